package models

type Category struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Equal compares by identifier only. Two categories are equal iff both carry
// a non-nil id and the ids match; an unsaved category equals only itself.
func (c *Category) Equal(other *Category) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil || c.ID == nil || other.ID == nil {
		return false
	}
	return *c.ID == *other.ID
}

func (c *Category) Validate() error {
	if c.Name == nil || *c.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be null"}
	}
	return nil
}
