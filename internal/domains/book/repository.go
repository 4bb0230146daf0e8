package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for books. Reads resolve the author
// reference (and the genre set where noted); a missing row maps to
// ErrBookNotFound. Population failures propagate as store errors.
type Repository interface {
	// FindAll returns every book sorted by title ascending, author
	// populated.
	FindAll(ctx context.Context) ([]Book, error)

	// FindByID returns the book with author and genres populated.
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// FindByAuthor returns the dependent set for an author candidate.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// FindByGenre returns books carrying the genre, author and genres
	// populated.
	FindByGenre(ctx context.Context, genreID uuid.UUID) ([]Book, error)

	// Insert stores the book and its genre set.
	Insert(ctx context.Context, b *Book) (*Book, error)

	// Update replaces all mutable fields including the genre set,
	// preserving the identifier.
	Update(ctx context.Context, b *Book) (*Book, error)

	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
