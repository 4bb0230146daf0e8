package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
)

type genreService struct {
	repo  genre.Repository
	books book.Repository
}

func NewGenreService(repo genre.Repository, books book.Repository) Service {
	return &genreService{
		repo:  repo,
		books: books,
	}
}

func (s *genreService) List(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.FindAll(ctx)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error) {
	g, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DetailPage{Genre: *g, Books: books}, nil
}

func (s *genreService) fetchWithBooks(ctx context.Context, id uuid.UUID) (*genre.Genre, []book.Book, error) {
	var (
		g     *genre.Genre
		books []book.Book
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		g, err = s.repo.FindByID(gctx, id)
		return err
	})
	grp.Go(func() error {
		var err error
		books, err = s.books.FindByGenre(gctx, id)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, nil, err
	}

	return g, books, nil
}

func (s *genreService) Create(ctx context.Context, form genre.GenreForm) (*CreateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return &CreateResult{Invalid: &InvalidForm{Attempt: form, Errors: errs}}, nil
	}

	attempt := form.ToEntity()

	// A genre with the same name already existing is a success, not a
	// conflict: the existing record is yielded instead of a duplicate.
	existing, err := s.repo.FindByName(ctx, attempt.Name)
	if err == nil {
		return &CreateResult{Genre: existing}, nil
	}
	if !errors.Is(err, genre.ErrGenreNotFound) {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, attempt)
	if err != nil {
		return nil, err
	}

	return &CreateResult{Genre: created}, nil
}

func (s *genreService) UpdateForm(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, form genre.GenreForm) (*UpdateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Invalid: &InvalidUpdate{Current: current, Attempt: form, Errors: errs}}, nil
	}

	g := form.ToEntity()
	g.ID = id

	updated, err := s.repo.Update(ctx, g)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{Genre: updated}, nil
}

func (s *genreService) DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error) {
	g, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeletePage{Genre: *g, Books: books}, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	g, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(books) > 0 {
		return &DeleteResult{Blocked: &DeletePage{Genre: *g, Books: books}}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return &DeleteResult{}, nil
}
