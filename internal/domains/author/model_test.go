package author

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"locallibrary-backend/internal/shared/forms"
)

func datePtr(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorName(t *testing.T) {
	a := Author{FirstName: "Herman", FamilyName: "Melville"}
	assert.Equal(t, "Melville, Herman", a.Name())

	assert.Equal(t, "", Author{FirstName: "Herman"}.Name())
	assert.Equal(t, "", Author{FamilyName: "Melville"}.Name())
	assert.Equal(t, "", Author{}.Name())
}

func TestAuthorLifespan(t *testing.T) {
	full := Author{DateOfBirth: datePtr(1819, 8, 1), DateOfDeath: datePtr(1891, 9, 28)}
	assert.Equal(t, "1819 - 1891", full.Lifespan())

	living := Author{DateOfBirth: datePtr(1948, 9, 20)}
	assert.Equal(t, "1948 - ", living.Lifespan())

	assert.Equal(t, " - ", Author{}.Lifespan())
}

func TestAuthorURL(t *testing.T) {
	id := uuid.MustParse("a3f1c9e2-1a2b-4c3d-8e4f-5a6b7c8d9e0f")
	a := Author{ID: id}
	assert.Equal(t, "/catalog/author/a3f1c9e2-1a2b-4c3d-8e4f-5a6b7c8d9e0f", a.URL())
}

func TestAuthorFormValidate(t *testing.T) {
	valid := AuthorForm{
		FirstName:   "Herman",
		FamilyName:  "Melville",
		DateOfBirth: "1819-08-01",
		DateOfDeath: "1891-09-28",
	}
	assert.Empty(t, valid.Validate())

	t.Run("names required", func(t *testing.T) {
		errs := AuthorForm{FirstName: "  ", FamilyName: ""}.Validate()
		assert.Equal(t, []forms.FieldError{
			{Field: "first_name", Message: "First name must be specified"},
			{Field: "family_name", Message: "Family name must be specified"},
		}, errs)
	})

	t.Run("non-alphanumeric name rejected", func(t *testing.T) {
		errs := AuthorForm{FirstName: "Her man", FamilyName: "Melville"}.Validate()
		assert.Equal(t, "first_name", errs[0].Field)
		assert.Equal(t, "First name has non-alphanumeric characters", errs[0].Message)
	})

	t.Run("dates optional but must parse", func(t *testing.T) {
		errs := AuthorForm{FirstName: "Herman", FamilyName: "Melville", DateOfBirth: "not-a-date"}.Validate()
		assert.Equal(t, "date_of_birth", errs[0].Field)
		assert.Equal(t, "Invalid date of birth", errs[0].Message)
	})
}

func TestAuthorFormToEntity(t *testing.T) {
	form := AuthorForm{
		FirstName:   "  Patrick<b> ",
		FamilyName:  "Rothfuss",
		DateOfBirth: "1973-06-06",
	}

	a := form.ToEntity()
	assert.Equal(t, "Patrick&lt;b&gt;", a.FirstName)
	assert.Equal(t, "Rothfuss", a.FamilyName)
	assert.Equal(t, time.Date(1973, 6, 6, 0, 0, 0, 0, time.UTC), *a.DateOfBirth)
	assert.Nil(t, a.DateOfDeath)
}
