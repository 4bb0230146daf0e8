package forms

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	var errs []FieldError

	errs = Check(errs, "name", nil)
	assert.Empty(t, errs)

	errs = Check(errs, "name", errors.New("Name must be specified"))
	errs = Check(errs, "date", errors.New("Invalid date"))

	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Field: "name", Message: "Name must be specified"}, errs[0])
	assert.Equal(t, FieldError{Field: "date", Message: "Invalid date"}, errs[1])
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Herman Melville", Clean("  Herman Melville \n"))
	assert.Equal(t, "", Clean("   "))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", Escape("<script>"))
	assert.Equal(t, "O&#39;Brien", Escape("O'Brien"))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestNormalizeList(t *testing.T) {
	t.Run("trims and drops empties", func(t *testing.T) {
		got := NormalizeList([]string{" a ", "", "b", "  "})
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("absent input yields empty set", func(t *testing.T) {
		got := NormalizeList(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("1819-08-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(1819, 8, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("empty is unset, not an error", func(t *testing.T) {
		got, err := ParseDate("  ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed date errors", func(t *testing.T) {
		_, err := ParseDate("01/08/1819")
		assert.Error(t, err)
	})
}
