package httpapi

import (
	"context"
	"sync"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// mockGreeter counts calls to Greet.
type mockGreeter struct {
	mu    sync.Mutex
	calls int
	panic bool
}

func (m *mockGreeter) Greet(name string) string {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.panic {
		panic("greeter exploded")
	}
	return "Hello " + name
}

// mockNames records calls and can be told to fail.
type mockNames struct {
	mu        sync.Mutex
	names     []domain.StoredName
	addErr    error
	listErr   error
	addCalls  int
	listCalls int
}

func (m *mockNames) Add(_ context.Context, name string) (domain.StoredName, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	if m.addErr != nil {
		return domain.StoredName{}, m.addErr
	}
	stored := domain.RestoreStoredName(int64(len(m.names)+1), name)
	m.names = append(m.names, stored)
	return stored, nil
}

func (m *mockNames) List(_ context.Context) ([]domain.StoredName, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.StoredName(nil), m.names...), nil
}
