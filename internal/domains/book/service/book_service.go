package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
)

type bookService struct {
	repo      book.Repository
	authors   author.Repository
	genres    genre.Repository
	instances bookinstance.Repository
}

func NewBookService(
	repo book.Repository,
	authors author.Repository,
	genres genre.Repository,
	instances bookinstance.Repository,
) Service {
	return &bookService{
		repo:      repo,
		authors:   authors,
		genres:    genres,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error) {
	b, instances, err := s.fetchWithInstances(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DetailPage{Book: *b, Instances: instances}, nil
}

func (s *bookService) fetchWithInstances(ctx context.Context, id uuid.UUID) (*book.Book, []bookinstance.BookInstance, error) {
	var (
		b         *book.Book
		instances []bookinstance.BookInstance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		b, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = s.instances.FindByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return b, instances, nil
}

// fetchOptions loads the author and genre reference lists concurrently,
// marking every genre whose id appears in the attempted set.
func (s *bookService) fetchOptions(ctx context.Context, selected []uuid.UUID) (*FormOptions, error) {
	var (
		authors []author.Author
		genres  []genre.Genre
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.authors.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = s.genres.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	selectedSet := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	options := make([]GenreOption, len(genres))
	for i, g := range genres {
		options[i] = GenreOption{Genre: g, Checked: selectedSet[g.ID]}
	}

	return &FormOptions{Authors: authors, Genres: options}, nil
}

func (s *bookService) CreateForm(ctx context.Context) (*FormOptions, error) {
	return s.fetchOptions(ctx, nil)
}

func (s *bookService) Create(ctx context.Context, form book.BookForm) (*CreateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		options, err := s.fetchOptions(ctx, form.GenreSet())
		if err != nil {
			return nil, err
		}
		return &CreateResult{Invalid: &InvalidForm{
			Attempt: form,
			Options: *options,
			Errors:  errs,
		}}, nil
	}

	created, err := s.repo.Insert(ctx, form.ToEntity())
	if err != nil {
		return nil, err
	}

	return &CreateResult{Book: created}, nil
}

func (s *bookService) UpdateForm(ctx context.Context, id uuid.UUID) (*UpdatePage, error) {
	var (
		b       *book.Book
		options *FormOptions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		b, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		options, err = s.fetchOptions(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Mark the stored genre set on the pre-filled form.
	for i := range options.Genres {
		options.Genres[i].Checked = b.HasGenre(options.Genres[i].ID)
	}

	return &UpdatePage{Book: *b, Options: *options}, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, form book.BookForm) (*UpdateResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		var (
			current *book.Book
			options *FormOptions
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			current, err = s.repo.FindByID(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			options, err = s.fetchOptions(gctx, form.GenreSet())
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return &UpdateResult{Invalid: &InvalidUpdate{
			Current: current,
			Attempt: form,
			Options: *options,
			Errors:  errs,
		}}, nil
	}

	b := form.ToEntity()
	b.ID = id

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{Book: updated}, nil
}

func (s *bookService) DeleteView(ctx context.Context, id uuid.UUID) (*DeletePage, error) {
	b, instances, err := s.fetchWithInstances(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeletePage{Book: *b, Instances: instances}, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	b, instances, err := s.fetchWithInstances(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(instances) > 0 {
		return &DeleteResult{Blocked: &DeletePage{Book: *b, Instances: instances}}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return &DeleteResult{}, nil
}
