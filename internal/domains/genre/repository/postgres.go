package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/genre"
)

// postgresRepository implements genre.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]genre.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	var g genre.Genre
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}
	return &g, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	var g genre.Genre
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE name = $1`, name).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}
	return &g, nil
}

func (r *postgresRepository) Insert(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	var created genre.Genre
	err := r.pool.QueryRow(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id, name`, g.Name).
		Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	var updated genre.Genre
	err := r.pool.QueryRow(ctx, `UPDATE genres SET name = $1 WHERE id = $2 RETURNING id, name`, g.Name, g.ID).
		Scan(&updated.ID, &updated.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return genre.ErrGenreHasBooks
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}
