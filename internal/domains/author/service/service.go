package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/shared/forms"
)

// Service defines the author workflows. Validation failures and blocked
// deletions are ordinary results carrying a redisplay payload, never
// errors; store errors propagate unchanged.
type Service interface {
	// List returns all authors sorted by family name.
	List(ctx context.Context) ([]author.Author, error)

	// Detail returns the author and their books, fetched concurrently.
	// Errors with ErrAuthorNotFound when the id does not resolve.
	Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error)

	// Create validates the form and inserts on success.
	Create(ctx context.Context, form author.AuthorForm) (*CreateResult, error)

	// UpdateForm returns the current author for pre-filling an edit form.
	UpdateForm(ctx context.Context, id uuid.UUID) (*author.Author, error)

	// Update validates and replaces all mutable fields. On validation
	// failure the current stored author is re-fetched for redisplay.
	Update(ctx context.Context, id uuid.UUID, form author.AuthorForm) (*UpdateResult, error)

	// DeleteView returns the deletion candidate plus its dependent books.
	DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error)

	// Delete re-checks the dependent set and removes the author only when
	// it is empty; otherwise the blocked page is returned for redisplay.
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
}

// DetailPage is the payload for the author detail view.
type DetailPage struct {
	Author author.Author `json:"author"`
	Books  []book.Book   `json:"author_books"`
}

// InvalidForm carries a failed creation attempt for redisplay.
type InvalidForm struct {
	Attempt author.AuthorForm  `json:"author"`
	Errors  []forms.FieldError `json:"errors"`
}

// CreateResult holds either the created author or the invalid attempt.
type CreateResult struct {
	Author  *author.Author `json:"author,omitempty"`
	Invalid *InvalidForm   `json:"invalid,omitempty"`
}

// InvalidUpdate carries a failed update attempt plus the stored author, so
// the form is not redisplayed blank.
type InvalidUpdate struct {
	Current *author.Author     `json:"author"`
	Attempt author.AuthorForm  `json:"attempt"`
	Errors  []forms.FieldError `json:"errors"`
}

// UpdateResult holds either the updated author or the invalid attempt.
type UpdateResult struct {
	Author  *author.Author `json:"author,omitempty"`
	Invalid *InvalidUpdate `json:"invalid,omitempty"`
}

// DeletePage is the payload for the delete confirmation view: the
// candidate plus the dependent set that blocks deletion when non-empty.
type DeletePage struct {
	Author author.Author `json:"author"`
	Books  []book.Book   `json:"author_books"`
}

// DeleteResult reports a blocked deletion; Blocked is nil when the author
// was removed.
type DeleteResult struct {
	Blocked *DeletePage `json:"blocked,omitempty"`
}
