package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/shared/middleware"
	"locallibrary-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	// The site root forwards to the catalog home page.
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusMovedPermanently, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupBookRoutes(catalog, c)
		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
	}

	return router
}

// Create routes precede the :id routes so gin does not treat "create" as
// an id segment.
func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/books", c.BookHandler.List)

	book := catalog.Group("/book")
	{
		book.GET("/create", c.BookHandler.CreateForm)
		book.POST("/create", c.BookHandler.Create)
		book.GET("/:id", c.BookHandler.Detail)
		book.GET("/:id/update", c.BookHandler.UpdateForm)
		book.POST("/:id/update", c.BookHandler.Update)
		book.GET("/:id/delete", c.BookHandler.DeleteForm)
		book.POST("/:id/delete", c.BookHandler.Delete)
	}
}

func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/authors", c.AuthorHandler.List)

	author := catalog.Group("/author")
	{
		author.GET("/create", c.AuthorHandler.CreateForm)
		author.POST("/create", c.AuthorHandler.Create)
		author.GET("/:id", c.AuthorHandler.Detail)
		author.GET("/:id/update", c.AuthorHandler.UpdateForm)
		author.POST("/:id/update", c.AuthorHandler.Update)
		author.GET("/:id/delete", c.AuthorHandler.DeleteForm)
		author.POST("/:id/delete", c.AuthorHandler.Delete)
	}
}

func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/genres", c.GenreHandler.List)

	genre := catalog.Group("/genre")
	{
		genre.GET("/create", c.GenreHandler.CreateForm)
		genre.POST("/create", c.GenreHandler.Create)
		genre.GET("/:id", c.GenreHandler.Detail)
		genre.GET("/:id/update", c.GenreHandler.UpdateForm)
		genre.POST("/:id/update", c.GenreHandler.Update)
		genre.GET("/:id/delete", c.GenreHandler.DeleteForm)
		genre.POST("/:id/delete", c.GenreHandler.Delete)
	}
}

func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/bookinstances", c.InstanceHandler.List)

	instance := catalog.Group("/bookinstance")
	{
		instance.GET("/create", c.InstanceHandler.CreateForm)
		instance.POST("/create", c.InstanceHandler.Create)
		instance.GET("/:id", c.InstanceHandler.Detail)
		instance.GET("/:id/update", c.InstanceHandler.UpdateForm)
		instance.POST("/:id/update", c.InstanceHandler.Update)
		instance.GET("/:id/delete", c.InstanceHandler.DeleteForm)
		instance.POST("/:id/delete", c.InstanceHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error"
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
