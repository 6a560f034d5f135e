package driven

import (
	"context"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// NameStore persists StoredName records.
// It is append-only: there is no update, delete or lookup.
type NameStore interface {
	// Insert persists a new record for name and returns it with the
	// identifier generated by the store. Names are not deduplicated.
	// Failures wrap domain.ErrStorageUnavailable.
	Insert(ctx context.Context, name string) (domain.StoredName, error)

	// ListAll returns every committed record. Order is unspecified.
	ListAll(ctx context.Context) ([]domain.StoredName, error)
}
