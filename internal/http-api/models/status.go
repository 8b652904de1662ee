package models

// BookStatus enumerates the circulation state of a book. It carries no
// transition rules, any value may replace any other.
type BookStatus string

const (
	StatusAvailable   BookStatus = "AVAILABLE"
	StatusBorrowed    BookStatus = "BORROWED"
	StatusUnavailable BookStatus = "UNAVAILABLE"
)

func (s BookStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusBorrowed, StatusUnavailable:
		return true
	}
	return false
}
