package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for genres. A missing row maps to
// ErrGenreNotFound.
type Repository interface {
	// FindAll returns every genre in natural store order.
	FindAll(ctx context.Context) ([]Genre, error)

	FindByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// FindByName performs a case-sensitive exact match, used for the
	// create-time dedup check.
	FindByName(ctx context.Context, name string) (*Genre, error)

	Insert(ctx context.Context, g *Genre) (*Genre, error)

	Update(ctx context.Context, g *Genre) (*Genre, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
