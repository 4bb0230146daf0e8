package book

import (
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/genre"
)

// Book is the domain entity for a catalog title. It references exactly one
// author and carries zero or more genres; insertion order of the genre set
// is irrelevant.
type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids"`

	// Populated references, filled on reads that resolve them.
	Author *author.Author `json:"author,omitempty"`
	Genres []genre.Genre  `json:"genres,omitempty"`
}

// HasGenre reports whether the book's genre set contains id.
func (b Book) HasGenre(id uuid.UUID) bool {
	for _, g := range b.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// URL returns the canonical path for this book.
func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}
