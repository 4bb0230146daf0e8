package genre

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreURL(t *testing.T) {
	id := uuid.MustParse("7b1f4a9c-2d3e-4f5a-9b6c-8d7e6f5a4b3c")
	g := Genre{ID: id, Name: "Fantasy"}
	assert.Equal(t, "/catalog/genre/7b1f4a9c-2d3e-4f5a-9b6c-8d7e6f5a4b3c", g.URL())
}

func TestGenreFormValidate(t *testing.T) {
	assert.Empty(t, GenreForm{Name: "Fantasy"}.Validate())
	assert.Empty(t, GenreForm{Name: "  Sci "}.Validate())

	t.Run("name required", func(t *testing.T) {
		errs := GenreForm{Name: "   "}.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "Genre name required", errs[0].Message)
	})

	t.Run("name below minimum length", func(t *testing.T) {
		errs := GenreForm{Name: "ab"}.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "Genre name must be between 3 and 100 characters", errs[0].Message)
	})
}

func TestGenreFormToEntity(t *testing.T) {
	g := GenreForm{Name: " <b>Horror</b> "}.ToEntity()
	assert.Equal(t, "&lt;b&gt;Horror&lt;/b&gt;", g.Name)
}
