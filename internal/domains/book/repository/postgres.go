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
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
)

// postgresRepository implements book.Repository on pgxpool. The genre set
// lives in the book_genres junction table; reads resolve the author row in
// the same query and the genre set in a follow-up query.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookAuthorColumns = `
        b.id, b.title, b.summary, b.isbn, b.author_id,
        a.first_name, a.family_name, a.date_of_birth, a.date_of_death`

func scanBookWithAuthor(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var a author.Author

	err := row.Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID,
		&a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath,
	)
	if err != nil {
		return nil, err
	}

	a.ID = b.AuthorID
	b.Author = &a
	return &b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT` + bookAuthorColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.title ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
        SELECT` + bookAuthorColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	b, err := scanBookWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if err := r.loadGenres(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *postgresRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
        SELECT id, title, summary, isbn, author_id
        FROM books
        WHERE author_id = $1
        ORDER BY title ASC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	query := `
        SELECT` + bookAuthorColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        JOIN book_genres bg ON bg.book_id = b.id
        WHERE bg.genre_id = $1
        ORDER BY b.title ASC
    `

	rows, err := r.pool.Query(ctx, query, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by genre: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	for i := range books {
		if err := r.loadGenres(ctx, &books[i]); err != nil {
			return nil, err
		}
	}

	return books, nil
}

// loadGenres populates the genre set of b.
func (r *postgresRepository) loadGenres(ctx context.Context, b *book.Book) error {
	query := `
        SELECT g.id, g.name
        FROM genres g
        JOIN book_genres bg ON bg.genre_id = g.id
        WHERE bg.book_id = $1
        ORDER BY g.name ASC
    `

	rows, err := r.pool.Query(ctx, query, b.ID)
	if err != nil {
		return fmt.Errorf("failed to query book genres: %w", err)
	}
	defer rows.Close()

	b.GenreIDs = nil
	b.Genres = nil
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return fmt.Errorf("failed to scan book genre: %w", err)
		}
		b.GenreIDs = append(b.GenreIDs, g.ID)
		b.Genres = append(b.Genres, g)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating book genres: %w", err)
	}

	return nil
}

func (r *postgresRepository) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO books (title, author_id, summary, isbn)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	created := *b
	err = tx.QueryRow(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	if err := replaceGenres(ctx, tx, created.ID, b.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        UPDATE books
        SET title = $1, author_id = $2, summary = $3, isbn = $4
        WHERE id = $5
        RETURNING id
    `

	updated := *b
	err = tx.QueryRow(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, b.ID).Scan(&updated.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
		return nil, fmt.Errorf("failed to clear book genres: %w", err)
	}
	if err := replaceGenres(ctx, tx, b.ID, b.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &updated, nil
}

func replaceGenres(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, genreIDs []uuid.UUID) error {
	for _, gid := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			bookID, gid,
		)
		if err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrBookHasCopies
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}
