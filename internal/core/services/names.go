package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
	"github.com/custodia-labs/namereg/internal/core/ports/driving"
	"github.com/custodia-labs/namereg/internal/logger"
)

// Ensure NameService implements the interface.
var _ driving.NameService = (*NameService)(nil)

// NameService registers names in a NameStore.
// Input validation belongs to the boundary adapters; the service passes
// names through verbatim and never deduplicates.
type NameService struct {
	store driven.NameStore
}

// NewNameService creates a new name service backed by store.
func NewNameService(store driven.NameStore) *NameService {
	return &NameService{store: store}
}

// Add persists name.
func (s *NameService) Add(ctx context.Context, name string) (domain.StoredName, error) {
	if s.store == nil {
		return domain.StoredName{}, domain.ErrNotImplemented
	}
	stored, err := s.store.Insert(ctx, name)
	if err != nil {
		return domain.StoredName{}, fmt.Errorf("adding %q: %w", name, err)
	}
	logger.Debug("stored name id=%d", stored.ID())
	return stored, nil
}

// List returns every stored record.
func (s *NameService) List(ctx context.Context) ([]domain.StoredName, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	names, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	return names, nil
}
