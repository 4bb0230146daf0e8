package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"locallibrary-backend/internal/config"
	"locallibrary-backend/internal/infrastructure/database"
	"locallibrary-backend/pkg/logger"
)

const migrationsDir = "migrations"

// Applies every .sql file under migrations/ in lexical order. Statements
// are idempotent, so re-running is safe.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.App.Environment)

	db := database.New(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("failed to read migration")
		}

		if _, err := db.Pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("migration failed")
		}

		logger.Info("migration applied", map[string]interface{}{"file": file})
	}

	logger.Info("migrations complete", map[string]interface{}{"count": len(files)})
}
