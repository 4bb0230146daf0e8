package catalog

// Counts is the home-page aggregate: record totals across the four entity
// types plus the number of copies currently available.
type Counts struct {
	Books           int64 `json:"book_count"`
	Copies          int64 `json:"book_instance_count"`
	AvailableCopies int64 `json:"book_instance_available_count"`
	Authors         int64 `json:"author_count"`
	Genres          int64 `json:"genre_count"`
}
