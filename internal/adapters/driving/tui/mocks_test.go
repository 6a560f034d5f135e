package tui

import (
	"context"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

type mockGreeter struct{}

func (mockGreeter) Greet(name string) string { return "Hello " + name }

type mockNames struct {
	names    []domain.StoredName
	addErr   error
	listErr  error
	addCalls int
}

func (m *mockNames) Add(_ context.Context, name string) (domain.StoredName, error) {
	m.addCalls++
	if m.addErr != nil {
		return domain.StoredName{}, m.addErr
	}
	stored := domain.RestoreStoredName(int64(len(m.names)+1), name)
	m.names = append(m.names, stored)
	return stored, nil
}

func (m *mockNames) List(context.Context) ([]domain.StoredName, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.StoredName(nil), m.names...), nil
}
