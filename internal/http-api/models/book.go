package models

type Book struct {
	ID              *int64      `json:"id"`
	Title           *string     `json:"title"`
	PublicationDate *Date       `json:"publicationDate,omitempty"`
	CopiesOwned     *int        `json:"copiesOwned"`
	Status          *BookStatus `json:"status"`
	Category        *Category   `json:"category,omitempty"`
	Authors         []Author    `json:"authors,omitempty"`

	// Denormalized foreign key for the category association. Mutated only
	// through SetCategory so it cannot drift from the object reference.
	CategoryID *int64 `json:"-"`
}

// SetCategory is the single mutation point for the category association: it
// updates the object reference and the stored foreign key together.
func (b *Book) SetCategory(c *Category) {
	b.Category = c
	if c != nil {
		b.CategoryID = c.ID
	} else {
		b.CategoryID = nil
	}
}

func (b *Book) Equal(other *Book) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil || b.ID == nil || other.ID == nil {
		return false
	}
	return *b.ID == *other.ID
}

// AuthorIDs returns the identifier set of the in-memory authors collection,
// skipping unsaved authors.
func (b *Book) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		if a.ID != nil {
			ids = append(ids, *a.ID)
		}
	}
	return ids
}

func (b *Book) Validate() error {
	if b.Title == nil || *b.Title == "" {
		return &ValidationError{Field: "title", Message: "must not be null"}
	}
	if b.CopiesOwned == nil {
		return &ValidationError{Field: "copiesOwned", Message: "must not be null"}
	}
	if *b.CopiesOwned < 0 {
		return &ValidationError{Field: "copiesOwned", Message: "must not be negative"}
	}
	if b.Status == nil {
		return &ValidationError{Field: "status", Message: "must not be null"}
	}
	if !b.Status.Valid() {
		return &ValidationError{Field: "status", Message: "unknown status"}
	}
	return nil
}
