package bookinstance

import "errors"

var (
	ErrInstanceNotFound = errors.New("book instance not found")
)

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrInstanceNotFound) {
		return 404
	}
	return 500
}
