package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
)

// authorService implements Service against the author and book stores.
type authorService struct {
	repo  author.Repository
	books book.Repository
}

func NewAuthorService(repo author.Repository, books book.Repository) Service {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error) {
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DetailPage{Author: *a, Books: books}, nil
}

// fetchWithBooks loads the author and their books concurrently. A failure
// of either read fails the whole aggregate.
func (s *authorService) fetchWithBooks(ctx context.Context, id uuid.UUID) (*author.Author, []book.Book, error) {
	var (
		a     *author.Author
		books []book.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.FindByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, books, nil
}

func (s *authorService) Create(ctx context.Context, form author.AuthorForm) (*CreateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return &CreateResult{Invalid: &InvalidForm{Attempt: form, Errors: errs}}, nil
	}

	created, err := s.repo.Insert(ctx, form.ToEntity())
	if err != nil {
		return nil, err
	}

	return &CreateResult{Author: created}, nil
}

func (s *authorService) UpdateForm(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, form author.AuthorForm) (*UpdateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		// Re-fetch the stored author so the form is not redisplayed blank.
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Invalid: &InvalidUpdate{Current: current, Attempt: form, Errors: errs}}, nil
	}

	a := form.ToEntity()
	a.ID = id

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{Author: updated}, nil
}

func (s *authorService) DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error) {
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeletePage{Author: *a, Books: books}, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	// The dependent set is re-checked here: time may have passed since the
	// confirmation page was shown.
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(books) > 0 {
		return &DeleteResult{Blocked: &DeletePage{Author: *a, Books: books}}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return &DeleteResult{}, nil
}
