package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/catalog"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/pkg/cache"
)

const (
	countsCacheKey = "catalog:counts"
	countsCacheTTL = time.Minute
)

// Service computes the home-page counts.
type Service interface {
	Counts(ctx context.Context) (*catalog.Counts, error)
}

// catalogService fans out one count query per collection and joins the
// results; any single failure fails the aggregate. Counts are cached
// briefly since the home page is the hottest read.
type catalogService struct {
	authors   author.Repository
	books     book.Repository
	genres    genre.Repository
	instances bookinstance.Repository
	cache     cache.Cache
}

func NewCatalogService(
	authors author.Repository,
	books book.Repository,
	genres genre.Repository,
	instances bookinstance.Repository,
	c cache.Cache,
) Service {
	return &catalogService{
		authors:   authors,
		books:     books,
		genres:    genres,
		instances: instances,
		cache:     c,
	}
}

func (s *catalogService) Counts(ctx context.Context) (*catalog.Counts, error) {
	if s.cache != nil {
		var cached catalog.Counts
		if found, err := s.cache.Get(ctx, countsCacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	var counts catalog.Counts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Copies, err = s.instances.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.AvailableCopies, err = s.instances.CountByStatus(gctx, bookinstance.StatusAvailable)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Authors, err = s.authors.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, countsCacheKey, counts, countsCacheTTL)
	}

	return &counts, nil
}
