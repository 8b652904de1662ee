package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/http-api/models"
)

func bookRow(prefix string) Row {
	return Row{
		prefix + "_id":               int64(77),
		prefix + "_title":            "Dune",
		prefix + "_publication_date": time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC),
		prefix + "_copies_owned":     int32(3),
		prefix + "_status":           "AVAILABLE",
		prefix + "_category_id":      int64(10),
	}
}

func TestMapBook(t *testing.T) {
	book, err := MapBook(bookRow("e"), "e")
	require.NoError(t, err)

	assert.Equal(t, int64(77), *book.ID)
	assert.Equal(t, "Dune", *book.Title)
	assert.Equal(t, "1965-08-01", book.PublicationDate.String())
	assert.Equal(t, 3, *book.CopiesOwned)
	assert.Equal(t, models.StatusAvailable, *book.Status)
	assert.Equal(t, int64(10), *book.CategoryID)
	// mappers never attach nested relationship objects
	assert.Nil(t, book.Category)
	assert.Empty(t, book.Authors)
}

func TestMapBookUsesPrefix(t *testing.T) {
	row := bookRow("book")
	book, err := MapBook(row, "book")
	require.NoError(t, err)
	assert.Equal(t, int64(77), *book.ID)

	// the same row seen under the wrong prefix is all NULLs
	other, err := MapBook(row, "e")
	require.NoError(t, err)
	assert.Nil(t, other.ID)
	assert.Nil(t, other.Title)
}

// An unmatched LEFT OUTER JOIN produces NULL for every joined column; the
// mapper decodes that into an object with a nil id, which the repository
// discards.
func TestMapCategoryAllNull(t *testing.T) {
	row := Row{"category_id": nil, "category_name": nil}
	category, err := MapCategory(row, "category")
	require.NoError(t, err)
	assert.Nil(t, category.ID)
	assert.Nil(t, category.Name)
}

func TestMapBookAtomicFailure(t *testing.T) {
	row := bookRow("e")
	row["e_status"] = "SHREDDED"

	book, err := MapBook(row, "e")
	assert.Nil(t, book)
	var convErr *TypeConversionError
	assert.ErrorAs(t, err, &convErr)
}

func TestMapLoan(t *testing.T) {
	row := Row{
		"e_id":          int64(5),
		"e_loan_date":   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		"e_return_date": nil,
		"e_book_id":     int64(77),
		"e_member_id":   int64(9),
	}
	loan, err := MapLoan(row, "e")
	require.NoError(t, err)

	assert.Equal(t, int64(5), *loan.ID)
	assert.Equal(t, "2025-02-01", loan.LoanDate.String())
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, int64(77), *loan.BookID)
	assert.Equal(t, int64(9), *loan.MemberID)
	assert.Nil(t, loan.Book)
	assert.Nil(t, loan.Member)
}

func TestMapReader(t *testing.T) {
	row := Row{
		"member_id":          int64(9),
		"member_first_name":  "Paul",
		"member_last_name":   "Atreides",
		"member_email":       "paul@arrakis.example",
		"member_joined_date": nil,
	}
	reader, err := MapReader(row, "member")
	require.NoError(t, err)

	assert.Equal(t, int64(9), *reader.ID)
	assert.Equal(t, "Paul", *reader.FirstName)
	assert.Equal(t, "paul@arrakis.example", *reader.Email)
	assert.Nil(t, reader.JoinedDate)
}
