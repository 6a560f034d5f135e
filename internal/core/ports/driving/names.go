package driving

import (
	"context"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// NameService registers and enumerates names.
type NameService interface {
	// Add persists name and returns the stored record.
	Add(ctx context.Context, name string) (domain.StoredName, error)

	// List returns every stored record.
	List(ctx context.Context) ([]domain.StoredName, error)
}
