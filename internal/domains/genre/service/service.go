package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
)

// Service defines the genre workflows. Create dedups by exact name match:
// an existing genre with the attempted name is returned as the success
// result instead of inserting a duplicate.
type Service interface {
	List(ctx context.Context) ([]genre.Genre, error)

	// Detail returns the genre and the books carrying it, fetched
	// concurrently. Errors with ErrGenreNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error)

	Create(ctx context.Context, form genre.GenreForm) (*CreateResult, error)

	UpdateForm(ctx context.Context, id uuid.UUID) (*genre.Genre, error)

	Update(ctx context.Context, id uuid.UUID, form genre.GenreForm) (*UpdateResult, error)

	DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error)

	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
}

type DetailPage struct {
	Genre genre.Genre `json:"genre"`
	Books []book.Book `json:"genre_books"`
}

type InvalidForm struct {
	Attempt genre.GenreForm    `json:"genre"`
	Errors  []forms.FieldError `json:"errors"`
}

type CreateResult struct {
	Genre   *genre.Genre `json:"genre,omitempty"`
	Invalid *InvalidForm `json:"invalid,omitempty"`
}

type InvalidUpdate struct {
	Current *genre.Genre       `json:"genre"`
	Attempt genre.GenreForm    `json:"attempt"`
	Errors  []forms.FieldError `json:"errors"`
}

type UpdateResult struct {
	Genre   *genre.Genre   `json:"genre,omitempty"`
	Invalid *InvalidUpdate `json:"invalid,omitempty"`
}

type DeletePage struct {
	Genre genre.Genre `json:"genre"`
	Books []book.Book `json:"genre_books"`
}

type DeleteResult struct {
	Blocked *DeletePage `json:"blocked,omitempty"`
}
