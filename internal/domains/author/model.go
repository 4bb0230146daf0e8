package author

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Validation constants
const (
	MaxNameLength = 100
)

// Author is the domain entity for a catalog author.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// Name returns the display name, "family, first". Empty when either part
// is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan returns the "birth - death" label, with blanks for unset dates.
func (a Author) Lifespan() string {
	birth, death := "", ""
	if a.DateOfBirth != nil {
		birth = strconv.Itoa(a.DateOfBirth.Year())
	}
	if a.DateOfDeath != nil {
		death = strconv.Itoa(a.DateOfDeath.Year())
	}
	return birth + " - " + death
}

// URL returns the canonical path for this author, used for post-mutation
// redirects.
func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}
