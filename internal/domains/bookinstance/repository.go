package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for book copies. A missing row maps to
// ErrInstanceNotFound.
type Repository interface {
	// FindAll returns every copy with its book populated.
	FindAll(ctx context.Context) ([]BookInstance, error)

	// FindByID returns the copy with its book populated.
	FindByID(ctx context.Context, id uuid.UUID) (*BookInstance, error)

	// FindByBook returns the dependent set for a book candidate.
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]BookInstance, error)

	Insert(ctx context.Context, bi *BookInstance) (*BookInstance, error)

	Update(ctx context.Context, bi *BookInstance) (*BookInstance, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)

	CountByStatus(ctx context.Context, status string) (int64, error)
}
