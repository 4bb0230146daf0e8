package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
)

type instanceService struct {
	repo  bookinstance.Repository
	books book.Repository
}

func NewBookInstanceService(repo bookinstance.Repository, books book.Repository) Service {
	return &instanceService{
		repo:  repo,
		books: books,
	}
}

func (s *instanceService) List(ctx context.Context) ([]bookinstance.BookInstance, error) {
	return s.repo.FindAll(ctx)
}

func (s *instanceService) Detail(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *instanceService) CreateForm(ctx context.Context) ([]book.Book, error) {
	return s.books.FindAll(ctx)
}

func (s *instanceService) Create(ctx context.Context, form bookinstance.BookInstanceForm) (*CreateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		// Reference lists are re-fetched for redisplay, never cached.
		books, err := s.books.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &CreateResult{Invalid: &InvalidForm{
			Attempt: form,
			Books:   books,
			Errors:  errs,
		}}, nil
	}

	created, err := s.repo.Insert(ctx, form.ToEntity())
	if err != nil {
		return nil, err
	}

	return &CreateResult{Instance: created}, nil
}

func (s *instanceService) UpdateForm(ctx context.Context, id uuid.UUID) (*UpdatePage, error) {
	bi, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UpdatePage{Instance: *bi, Books: books}, nil
}

func (s *instanceService) fetchWithBooks(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, []book.Book, error) {
	var (
		bi    *bookinstance.BookInstance
		books []book.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bi, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return bi, books, nil
}

func (s *instanceService) Update(ctx context.Context, id uuid.UUID, form bookinstance.BookInstanceForm) (*UpdateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		current, books, err := s.fetchWithBooks(ctx, id)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Invalid: &InvalidUpdate{
			Current: current,
			Attempt: form,
			Books:   books,
			Errors:  errs,
		}}, nil
	}

	bi := form.ToEntity()
	bi.ID = id

	updated, err := s.repo.Update(ctx, bi)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{Instance: updated}, nil
}

func (s *instanceService) DeleteView(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *instanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
