package models

type Author struct {
	ID        *int64  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	// Inverse side of the book-author association. Never persisted from
	// this side and never hydrated by the author repository.
	Books []Book `json:"books,omitempty"`
}

func (a *Author) Equal(other *Author) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil || a.ID == nil || other.ID == nil {
		return false
	}
	return *a.ID == *other.ID
}

func (a *Author) Validate() error {
	if a.FirstName == nil || *a.FirstName == "" {
		return &ValidationError{Field: "firstName", Message: "must not be null"}
	}
	if a.LastName == nil || *a.LastName == "" {
		return &ValidationError{Field: "lastName", Message: "must not be null"}
	}
	return nil
}
