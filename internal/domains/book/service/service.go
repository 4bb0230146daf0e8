package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
)

// Service defines the book workflows. Form redisplay payloads always carry
// freshly fetched author and genre lists; nothing is cached between
// submissions.
type Service interface {
	// List returns all books sorted by title, author populated.
	List(ctx context.Context) ([]book.Book, error)

	// Detail returns the book (author and genres populated) and its
	// copies, fetched concurrently. Errors with ErrBookNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error)

	// CreateForm returns the reference lists needed to render a creation
	// form.
	CreateForm(ctx context.Context) (*FormOptions, error)

	Create(ctx context.Context, form book.BookForm) (*CreateResult, error)

	// UpdateForm returns the current book plus reference lists, genres
	// marked selected against the stored genre set.
	UpdateForm(ctx context.Context, id uuid.UUID) (*UpdatePage, error)

	Update(ctx context.Context, id uuid.UUID, form book.BookForm) (*UpdateResult, error)

	DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error)

	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
}

// GenreOption is a genre plus the selected marker used to re-display a
// form; the marker is a display hint, never stored.
type GenreOption struct {
	genre.Genre
	Checked bool `json:"checked"`
}

// FormOptions carries the reference lists for the book form.
type FormOptions struct {
	Authors []author.Author `json:"authors"`
	Genres  []GenreOption   `json:"genres"`
}

type DetailPage struct {
	Book      book.Book                   `json:"book"`
	Instances []bookinstance.BookInstance `json:"book_instances"`
}

type InvalidForm struct {
	Attempt book.BookForm      `json:"book"`
	Options FormOptions        `json:"options"`
	Errors  []forms.FieldError `json:"errors"`
}

type CreateResult struct {
	Book    *book.Book   `json:"book,omitempty"`
	Invalid *InvalidForm `json:"invalid,omitempty"`
}

type UpdatePage struct {
	Book    book.Book   `json:"book"`
	Options FormOptions `json:"options"`
}

type InvalidUpdate struct {
	Current *book.Book         `json:"book"`
	Attempt book.BookForm      `json:"attempt"`
	Options FormOptions        `json:"options"`
	Errors  []forms.FieldError `json:"errors"`
}

type UpdateResult struct {
	Book    *book.Book     `json:"book,omitempty"`
	Invalid *InvalidUpdate `json:"invalid,omitempty"`
}

type DeletePage struct {
	Book      book.Book                   `json:"book"`
	Instances []bookinstance.BookInstance `json:"book_instances"`
}

type DeleteResult struct {
	Blocked *DeletePage `json:"blocked,omitempty"`
}
