package forms

import (
	"html"
	"strings"
	"time"
)

// DateLayout is the accepted form date format (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// FieldError is a single field-level validation failure. Errors keep the
// order in which fields were checked so forms re-render deterministically.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Check appends a FieldError when err is non-nil.
func Check(errs []FieldError, field string, err error) []FieldError {
	if err == nil {
		return errs
	}
	return append(errs, FieldError{Field: field, Message: err.Error()})
}

// Clean trims surrounding whitespace from a raw form value.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// Escape HTML-escapes a value for safe embedding in rendered output.
// Escaping happens at validation time, not at render time.
func Escape(s string) string {
	return html.EscapeString(s)
}

// NormalizeList normalizes a multi-valued field to a set of cleaned values.
// An absent or empty input yields an empty set, never an error.
func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = Clean(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ParseDate parses an optional ISO-8601 date. Empty input is valid and
// yields nil (stored as unset).
func ParseDate(s string) (*time.Time, error) {
	s = Clean(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
