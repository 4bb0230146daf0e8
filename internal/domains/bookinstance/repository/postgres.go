package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
)

// postgresRepository implements bookinstance.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) bookinstance.Repository {
	return &postgresRepository{pool: pool}
}

const instanceBookColumns = `
        bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back,
        b.title, b.summary, b.isbn, b.author_id`

func scanInstanceWithBook(row pgx.Row) (*bookinstance.BookInstance, error) {
	var bi bookinstance.BookInstance
	var b book.Book

	err := row.Scan(
		&bi.ID, &bi.BookID, &bi.Imprint, &bi.Status, &bi.DueBack,
		&b.Title, &b.Summary, &b.ISBN, &b.AuthorID,
	)
	if err != nil {
		return nil, err
	}

	b.ID = bi.BookID
	bi.Book = &b
	return &bi, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]bookinstance.BookInstance, error) {
	query := `
        SELECT` + instanceBookColumns + `
        FROM book_instances bi
        JOIN books b ON b.id = bi.book_id
        ORDER BY b.title ASC, bi.imprint ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query book instances: %w", err)
	}
	defer rows.Close()

	var instances []bookinstance.BookInstance
	for rows.Next() {
		bi, err := scanInstanceWithBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, *bi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book instances: %w", err)
	}

	return instances, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	query := `
        SELECT` + instanceBookColumns + `
        FROM book_instances bi
        JOIN books b ON b.id = bi.book_id
        WHERE bi.id = $1
    `

	bi, err := scanInstanceWithBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bookinstance.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}

	return bi, nil
}

func (r *postgresRepository) FindByBook(ctx context.Context, bookID uuid.UUID) ([]bookinstance.BookInstance, error) {
	query := `
        SELECT id, book_id, imprint, status, due_back
        FROM book_instances
        WHERE book_id = $1
        ORDER BY imprint ASC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book instances by book: %w", err)
	}
	defer rows.Close()

	var instances []bookinstance.BookInstance
	for rows.Next() {
		var bi bookinstance.BookInstance
		if err := rows.Scan(&bi.ID, &bi.BookID, &bi.Imprint, &bi.Status, &bi.DueBack); err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, bi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book instances: %w", err)
	}

	return instances, nil
}

func (r *postgresRepository) Insert(ctx context.Context, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	query := `
        INSERT INTO book_instances (book_id, imprint, status, due_back)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	created := *bi
	err := r.pool.QueryRow(ctx, query, bi.BookID, bi.Imprint, bi.Status, bi.DueBack).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	query := `
        UPDATE book_instances
        SET book_id = $1, imprint = $2, status = $3, due_back = $4
        WHERE id = $5
        RETURNING id
    `

	updated := *bi
	err := r.pool.QueryRow(ctx, query, bi.BookID, bi.Imprint, bi.Status, bi.DueBack, bi.ID).Scan(&updated.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bookinstance.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book instance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return bookinstance.ErrInstanceNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return count, nil
}
