package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = "id, first_name, family_name, date_of_birth, date_of_death"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        ORDER BY family_name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        WHERE id = $1
    `

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns + `
    `

	created, err := scanAuthor(r.pool.QueryRow(
		ctx, query, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, family_name = $2, date_of_birth = $3, date_of_death = $4
        WHERE id = $5
        RETURNING ` + authorColumns + `
    `

	updated, err := scanAuthor(r.pool.QueryRow(
		ctx, query, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath, a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		// Referential check happens in the service; the FK constraint is
		// the store-level backstop.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}
