package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"locallibrary-backend/internal/config"
	infraCache "locallibrary-backend/internal/infrastructure/cache"
	"locallibrary-backend/internal/infrastructure/database"
	"locallibrary-backend/pkg/cache"

	"locallibrary-backend/internal/domains/author"
	authorHandler "locallibrary-backend/internal/domains/author/handler"
	authorRepo "locallibrary-backend/internal/domains/author/repository"
	authorService "locallibrary-backend/internal/domains/author/service"
	"locallibrary-backend/internal/domains/book"
	bookHandler "locallibrary-backend/internal/domains/book/handler"
	bookRepo "locallibrary-backend/internal/domains/book/repository"
	bookService "locallibrary-backend/internal/domains/book/service"
	"locallibrary-backend/internal/domains/bookinstance"
	instanceHandler "locallibrary-backend/internal/domains/bookinstance/handler"
	instanceRepo "locallibrary-backend/internal/domains/bookinstance/repository"
	instanceService "locallibrary-backend/internal/domains/bookinstance/service"
	catalogHandler "locallibrary-backend/internal/domains/catalog/handler"
	catalogService "locallibrary-backend/internal/domains/catalog/service"
	"locallibrary-backend/internal/domains/genre"
	genreHandler "locallibrary-backend/internal/domains/genre/handler"
	genreRepo "locallibrary-backend/internal/domains/genre/repository"
	genreService "locallibrary-backend/internal/domains/genre/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo   author.Repository
	BookRepo     book.Repository
	GenreRepo    genre.Repository
	InstanceRepo bookinstance.Repository

	AuthorService   authorService.Service
	BookService     bookService.Service
	GenreService    genreService.Service
	InstanceService instanceService.Service
	CatalogService  catalogService.Service

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	GenreHandler    *genreHandler.GenreHandler
	InstanceHandler *instanceHandler.BookInstanceHandler
	CatalogHandler  *catalogHandler.CatalogHandler
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db := database.New(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis is optional: the home-page counters just skip the cache when
	// it is unreachable.
	redisCache, err := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog counts will not be cached")
	} else {
		c.Cache = redisCache
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.InstanceRepo = instanceRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.GenreRepo, c.InstanceRepo)
	c.InstanceService = instanceService.NewBookInstanceService(c.InstanceRepo, c.BookRepo)
	c.CatalogService = catalogService.NewCatalogService(
		c.AuthorRepo,
		c.BookRepo,
		c.GenreRepo,
		c.InstanceRepo,
		c.Cache,
	)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.InstanceHandler = instanceHandler.NewBookInstanceHandler(c.InstanceService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
}

// Cleanup releases pooled resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("database connections closed")
	}
}
