package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
)

// Ensure NameStore implements the interface.
var _ driven.NameStore = (*NameStore)(nil)

// NameStore is an in-memory implementation of driven.NameStore.
// Identifiers are assigned from a counter starting at 1.
type NameStore struct {
	mu     sync.RWMutex
	nextID int64
	names  map[int64]domain.StoredName
}

// NewNameStore creates a new in-memory name store.
func NewNameStore() *NameStore {
	return &NameStore{
		nextID: 1,
		names:  make(map[int64]domain.StoredName),
	}
}

// Insert stores name under a freshly generated identifier.
func (s *NameStore) Insert(_ context.Context, name string) (domain.StoredName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := domain.RestoreStoredName(s.nextID, name)
	s.names[stored.ID()] = stored
	s.nextID++
	return stored, nil
}

// ListAll returns all stored names ordered by identifier.
func (s *NameStore) ListAll(_ context.Context) ([]domain.StoredName, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.StoredName, 0, len(s.names))
	for _, stored := range s.names {
		result = append(result, stored)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}
