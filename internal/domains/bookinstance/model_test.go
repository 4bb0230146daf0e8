package bookinstance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookID = uuid.MustParse("44444444-4444-4444-8444-444444444444")

func validForm() BookInstanceForm {
	return BookInstanceForm{
		Book:    bookID.String(),
		Imprint: "London Folio Society, 2010",
		Status:  StatusAvailable,
		DueBack: "",
	}
}

func TestBookInstanceFormValidate(t *testing.T) {
	assert.Empty(t, validForm().Validate())

	t.Run("book must be an identifier", func(t *testing.T) {
		form := validForm()
		form.Book = "Moby Dick"
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "book", errs[0].Field)
		assert.Equal(t, "Book must be specified", errs[0].Message)
	})

	t.Run("status outside the enumeration", func(t *testing.T) {
		form := validForm()
		form.Status = "Lost"
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "status", errs[0].Field)
		assert.Equal(t, "Unknown status", errs[0].Message)
	})

	t.Run("due_back optional but must parse", func(t *testing.T) {
		form := validForm()
		form.DueBack = "next week"
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "due_back", errs[0].Field)
		assert.Equal(t, "Invalid date", errs[0].Message)
	})
}

func TestBookInstanceFormToEntity(t *testing.T) {
	form := validForm()
	form.Status = StatusLoaned
	form.DueBack = "2026-09-15"

	bi := form.ToEntity()
	assert.Equal(t, bookID, bi.BookID)
	assert.Equal(t, StatusLoaned, bi.Status)
	require.NotNil(t, bi.DueBack)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *bi.DueBack)
}

func TestBookInstanceURL(t *testing.T) {
	id := uuid.MustParse("55555555-5555-4555-8555-555555555555")
	bi := BookInstance{ID: id}
	assert.Equal(t, "/catalog/bookinstance/55555555-5555-4555-8555-555555555555", bi.URL())
}
