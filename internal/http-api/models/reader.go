package models

type Reader struct {
	ID         *int64  `json:"id"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	JoinedDate *Date   `json:"joinedDate,omitempty"`
}

func (r *Reader) Equal(other *Reader) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.ID == nil || other.ID == nil {
		return false
	}
	return *r.ID == *other.ID
}

func (r *Reader) Validate() error {
	if r.FirstName == nil || *r.FirstName == "" {
		return &ValidationError{Field: "firstName", Message: "must not be null"}
	}
	if r.LastName == nil || *r.LastName == "" {
		return &ValidationError{Field: "lastName", Message: "must not be null"}
	}
	if r.Email == nil || *r.Email == "" {
		return &ValidationError{Field: "email", Message: "must not be null"}
	}
	return nil
}
