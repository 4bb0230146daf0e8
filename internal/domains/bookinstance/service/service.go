package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/shared/forms"
)

// Service defines the book copy workflows. Copies have no dependents, so
// deletion is unconditional once the copy is found.
type Service interface {
	// List returns all copies with their books populated.
	List(ctx context.Context) ([]bookinstance.BookInstance, error)

	// Detail returns the copy with its book populated. Errors with
	// ErrInstanceNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error)

	// CreateForm returns the book list needed to render a creation form.
	CreateForm(ctx context.Context) ([]book.Book, error)

	Create(ctx context.Context, form bookinstance.BookInstanceForm) (*CreateResult, error)

	// UpdateForm returns the current copy plus the book list.
	UpdateForm(ctx context.Context, id uuid.UUID) (*UpdatePage, error)

	Update(ctx context.Context, id uuid.UUID, form bookinstance.BookInstanceForm) (*UpdateResult, error)

	// DeleteView returns the copy for the confirmation page.
	DeleteView(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error)

	// Delete removes the copy. No dependent set exists to block it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvalidForm struct {
	Attempt bookinstance.BookInstanceForm `json:"bookinstance"`
	Books   []book.Book                   `json:"book_list"`
	Errors  []forms.FieldError            `json:"errors"`
}

type CreateResult struct {
	Instance *bookinstance.BookInstance `json:"bookinstance,omitempty"`
	Invalid  *InvalidForm               `json:"invalid,omitempty"`
}

type UpdatePage struct {
	Instance bookinstance.BookInstance `json:"bookinstance"`
	Books    []book.Book               `json:"book_list"`
}

type InvalidUpdate struct {
	Current *bookinstance.BookInstance    `json:"bookinstance"`
	Attempt bookinstance.BookInstanceForm `json:"attempt"`
	Books   []book.Book                   `json:"book_list"`
	Errors  []forms.FieldError            `json:"errors"`
}

type UpdateResult struct {
	Instance *bookinstance.BookInstance `json:"bookinstance,omitempty"`
	Invalid  *InvalidUpdate             `json:"invalid,omitempty"`
}
