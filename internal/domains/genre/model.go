package genre

import (
	"github.com/google/uuid"
)

// Validation constants
const (
	MinNameLength = 3
	MaxNameLength = 100
)

// Genre is a classification a book can carry, keyed by name.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// URL returns the canonical path for this genre.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}
