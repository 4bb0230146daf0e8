package bookinstance

import (
	"time"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
)

// Loan status values. Transitions are unconstrained and driven purely by
// operator form submission.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

// Statuses lists the accepted status values in form display order.
var Statuses = []string{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

// BookInstance is a physical lending copy of a book. DueBack is a free
// optional attribute; it is not validated against Status.
type BookInstance struct {
	ID      uuid.UUID  `json:"id" db:"id"`
	BookID  uuid.UUID  `json:"book_id" db:"book_id"`
	Imprint string     `json:"imprint" db:"imprint"`
	Status  string     `json:"status" db:"status"`
	DueBack *time.Time `json:"due_back,omitempty" db:"due_back"`

	// Populated reference, filled on reads that resolve it.
	Book *book.Book `json:"book,omitempty"`
}

// URL returns the canonical path for this copy.
func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}
