package bookinstance

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"locallibrary-backend/internal/shared/forms"
)

// BookInstanceForm carries the raw form fields for create and update.
type BookInstanceForm struct {
	Book    string `json:"book" form:"book"`
	Imprint string `json:"imprint" form:"imprint"`
	Status  string `json:"status" form:"status"`
	DueBack string `json:"due_back" form:"due_back"`
}

func (f BookInstanceForm) Validate() []forms.FieldError {
	var errs []forms.FieldError

	errs = forms.Check(errs, "book", validation.Validate(forms.Clean(f.Book),
		validation.Required.Error("Book must be specified"),
		is.UUID.Error("Book must be specified"),
	))
	errs = forms.Check(errs, "imprint", validation.Validate(forms.Clean(f.Imprint),
		validation.Required.Error("Imprint must be specified"),
	))
	errs = forms.Check(errs, "status", validation.Validate(forms.Clean(f.Status),
		validation.Required.Error("Status must be specified"),
		validation.In(StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved).Error("Unknown status"),
	))
	errs = forms.Check(errs, "due_back", validation.Validate(forms.Clean(f.DueBack),
		validation.Date(forms.DateLayout).Error("Invalid date"),
	))

	return errs
}

// ToEntity builds a BookInstance from a validated form.
func (f BookInstanceForm) ToEntity() *BookInstance {
	bookID, _ := uuid.Parse(forms.Clean(f.Book))
	dueBack, _ := forms.ParseDate(f.DueBack)

	return &BookInstance{
		BookID:  bookID,
		Imprint: forms.Escape(forms.Clean(f.Imprint)),
		Status:  forms.Clean(f.Status),
		DueBack: dueBack,
	}
}
