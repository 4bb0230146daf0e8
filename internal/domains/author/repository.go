package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors. Store errors propagate
// unchanged; a missing row maps to ErrAuthorNotFound.
type Repository interface {
	// FindAll returns every author sorted by family name ascending.
	FindAll(ctx context.Context) ([]Author, error)

	// FindByID returns ErrAuthorNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// Insert stores a new author and returns it with its assigned id.
	Insert(ctx context.Context, a *Author) (*Author, error)

	// Update replaces all mutable fields of the author at a.ID.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete physically removes the author.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}
