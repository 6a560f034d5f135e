package mcp

import (
	"context"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// mockGreetingService is a mock implementation of driving.GreetingService.
type mockGreetingService struct {
	calls int
}

func (m *mockGreetingService) Greet(name string) string {
	m.calls++
	return "Hello " + name
}

// mockNameService is a mock implementation of driving.NameService.
type mockNameService struct {
	names    []domain.StoredName
	err      error
	addCalls int
}

func (m *mockNameService) Add(_ context.Context, name string) (domain.StoredName, error) {
	m.addCalls++
	if m.err != nil {
		return domain.StoredName{}, m.err
	}
	stored := domain.RestoreStoredName(int64(len(m.names)+1), name)
	m.names = append(m.names, stored)
	return stored, nil
}

func (m *mockNameService) List(_ context.Context) ([]domain.StoredName, error) {
	return m.names, m.err
}
