package genre

import "errors"

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreHasBooks = errors.New("cannot delete genre carried by books")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return 404
	case errors.Is(err, ErrGenreHasBooks):
		return 409
	default:
		return 500
	}
}
