package models

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sequence hands out monotonically increasing identifiers for sample data.
// Callers inject one per test or per seed run instead of sharing a
// process-wide counter.
type Sequence struct {
	n atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.n.Store(start)
	return s
}

func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

func ref[T any](v T) *T { return &v }

// RandomBook returns a book with a sequence-assigned id and random required
// fields. Use for equality and mapping tests, not for inserts.
func RandomBook(seq *Sequence) *Book {
	return &Book{
		ID:          ref(seq.Next()),
		Title:       ref(uuid.NewString()),
		CopiesOwned: ref(int(seq.Next())),
		Status:      ref(StatusAvailable),
	}
}

func RandomAuthor(seq *Sequence) *Author {
	return &Author{
		ID:        ref(seq.Next()),
		FirstName: ref(uuid.NewString()),
		LastName:  ref(uuid.NewString()),
	}
}

func RandomCategory(seq *Sequence) *Category {
	return &Category{
		ID:   ref(seq.Next()),
		Name: ref(uuid.NewString()),
	}
}

func RandomReader(seq *Sequence) *Reader {
	return &Reader{
		ID:        ref(seq.Next()),
		FirstName: ref(uuid.NewString()),
		LastName:  ref(uuid.NewString()),
		Email:     ref(uuid.NewString()),
	}
}

func RandomLoan(seq *Sequence) *Loan {
	return &Loan{
		ID:       ref(seq.Next()),
		LoanDate: ref(DateOf(time.Now())),
	}
}
