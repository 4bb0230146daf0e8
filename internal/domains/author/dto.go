package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"locallibrary-backend/internal/shared/forms"
)

// AuthorForm carries the raw form fields for create and update. Values
// arrive as untyped strings and are sanitized during validation.
type AuthorForm struct {
	FirstName   string `json:"first_name" form:"first_name"`
	FamilyName  string `json:"family_name" form:"family_name"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	DateOfDeath string `json:"date_of_death" form:"date_of_death"`
}

// Validate checks the form field by field and returns the ordered error
// list. An empty list means the form is valid.
func (f AuthorForm) Validate() []forms.FieldError {
	var errs []forms.FieldError

	errs = forms.Check(errs, "first_name", validation.Validate(forms.Clean(f.FirstName),
		validation.Required.Error("First name must be specified"),
		validation.Length(1, MaxNameLength).Error("First name too long"),
		is.Alphanumeric.Error("First name has non-alphanumeric characters"),
	))
	errs = forms.Check(errs, "family_name", validation.Validate(forms.Clean(f.FamilyName),
		validation.Required.Error("Family name must be specified"),
		validation.Length(1, MaxNameLength).Error("Family name too long"),
		is.Alphanumeric.Error("Family name has non-alphanumeric characters"),
	))
	errs = forms.Check(errs, "date_of_birth", validation.Validate(forms.Clean(f.DateOfBirth),
		validation.Date(forms.DateLayout).Error("Invalid date of birth"),
	))
	errs = forms.Check(errs, "date_of_death", validation.Validate(forms.Clean(f.DateOfDeath),
		validation.Date(forms.DateLayout).Error("Invalid date of death"),
	))

	return errs
}

// ToEntity builds an Author from a validated form. String fields are
// escaped here, at validation time, not at render time.
func (f AuthorForm) ToEntity() *Author {
	birth, _ := forms.ParseDate(f.DateOfBirth)
	death, _ := forms.ParseDate(f.DateOfDeath)

	return &Author{
		FirstName:   forms.Escape(forms.Clean(f.FirstName)),
		FamilyName:  forms.Escape(forms.Clean(f.FamilyName)),
		DateOfBirth: birth,
		DateOfDeath: death,
	}
}
