package book

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrBookHasCopies = errors.New("cannot delete book with existing copies")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrBookHasCopies):
		return 409
	default:
		return 500
	}
}
