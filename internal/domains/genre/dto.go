package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"locallibrary-backend/internal/shared/forms"
)

// GenreForm carries the raw form fields for create and update.
type GenreForm struct {
	Name string `json:"name" form:"name"`
}

func (f GenreForm) Validate() []forms.FieldError {
	var errs []forms.FieldError

	errs = forms.Check(errs, "name", validation.Validate(forms.Clean(f.Name),
		validation.Required.Error("Genre name required"),
		validation.Length(MinNameLength, MaxNameLength).Error("Genre name must be between 3 and 100 characters"),
	))

	return errs
}

// ToEntity builds a Genre from a validated form, escaped for rendering.
func (f GenreForm) ToEntity() *Genre {
	return &Genre{Name: forms.Escape(forms.Clean(f.Name))}
}
