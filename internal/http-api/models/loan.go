package models

// Loan ties one book to one reader. The borrowing reader is called the
// member throughout the schema (column member_id).
type Loan struct {
	ID         *int64  `json:"id"`
	LoanDate   *Date   `json:"loanDate"`
	ReturnDate *Date   `json:"returnDate,omitempty"`
	Book       *Book   `json:"book,omitempty"`
	Member     *Reader `json:"member,omitempty"`

	// Denormalized foreign keys, kept in sync by SetBook / SetMember.
	BookID   *int64 `json:"-"`
	MemberID *int64 `json:"-"`
}

func (l *Loan) SetBook(b *Book) {
	l.Book = b
	if b != nil {
		l.BookID = b.ID
	} else {
		l.BookID = nil
	}
}

func (l *Loan) SetMember(r *Reader) {
	l.Member = r
	if r != nil {
		l.MemberID = r.ID
	} else {
		l.MemberID = nil
	}
}

func (l *Loan) Equal(other *Loan) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil || l.ID == nil || other.ID == nil {
		return false
	}
	return *l.ID == *other.ID
}

func (l *Loan) Validate() error {
	if l.LoanDate == nil {
		return &ValidationError{Field: "loanDate", Message: "must not be null"}
	}
	return nil
}
