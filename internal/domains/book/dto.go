package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"locallibrary-backend/internal/shared/forms"
)

// BookForm carries the raw form fields for create and update. Genre may
// arrive as a single value or a list; it is normalized to a set before
// validation and an absent field is an empty set, not an error.
type BookForm struct {
	Title   string   `json:"title" form:"title"`
	Author  string   `json:"author" form:"author"`
	Summary string   `json:"summary" form:"summary"`
	ISBN    string   `json:"isbn" form:"isbn"`
	Genre   []string `json:"genre" form:"genre"`
}

func (f BookForm) Validate() []forms.FieldError {
	var errs []forms.FieldError

	errs = forms.Check(errs, "title", validation.Validate(forms.Clean(f.Title),
		validation.Required.Error("Title must not be empty."),
	))
	errs = forms.Check(errs, "author", validation.Validate(forms.Clean(f.Author),
		validation.Required.Error("Author must not be empty."),
		is.UUID.Error("Author must not be empty."),
	))
	errs = forms.Check(errs, "summary", validation.Validate(forms.Clean(f.Summary),
		validation.Required.Error("Summary must not be empty."),
	))
	errs = forms.Check(errs, "isbn", validation.Validate(forms.Clean(f.ISBN),
		validation.Required.Error("ISBN must not be empty"),
	))
	for _, g := range forms.NormalizeList(f.Genre) {
		if err := validation.Validate(g, is.UUID.Error("Invalid genre")); err != nil {
			errs = forms.Check(errs, "genre", err)
			break
		}
	}

	return errs
}

// GenreSet returns the normalized genre identifiers from the attempted
// form. Values that do not parse are dropped; used both for building the
// entity and for the "checked" re-display hint.
func (f BookForm) GenreSet() []uuid.UUID {
	values := forms.NormalizeList(f.Genre)
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ToEntity builds a Book from a validated form.
func (f BookForm) ToEntity() *Book {
	authorID, _ := uuid.Parse(forms.Clean(f.Author))

	return &Book{
		Title:    forms.Escape(forms.Clean(f.Title)),
		AuthorID: authorID,
		Summary:  forms.Escape(forms.Clean(f.Summary)),
		ISBN:     forms.Escape(forms.Clean(f.ISBN)),
		GenreIDs: f.GenreSet(),
	}
}
