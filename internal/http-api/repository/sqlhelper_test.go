package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookColumnsAliasing(t *testing.T) {
	assert.Equal(t, []string{
		"e.id AS e_id",
		"e.title AS e_title",
		"e.publication_date AS e_publication_date",
		"e.copies_owned AS e_copies_owned",
		"e.status AS e_status",
		"e.category_id AS e_category_id",
	}, BookColumns("e", "e"))
}

// One physical column set must produce distinct aliases per prefix, so the
// same table shape can sit at several join positions of one query.
func TestColumnsPrefixDisambiguation(t *testing.T) {
	base := ReaderColumns("e", "e")
	joined := ReaderColumns("member", "member")

	assert.Len(t, joined, len(base))
	assert.Equal(t, "member.id AS member_id", joined[0])
	assert.Equal(t, "member.joined_date AS member_joined_date", joined[4])
	for i := range base {
		assert.NotEqual(t, base[i], joined[i])
	}
}

func TestColumnsAreDeterministic(t *testing.T) {
	assert.Equal(t, LoanColumns("e", "e"), LoanColumns("e", "e"))
	assert.Equal(t, []string{
		"e.id AS e_id",
		"e.loan_date AS e_loan_date",
		"e.return_date AS e_return_date",
		"e.book_id AS e_book_id",
		"e.member_id AS e_member_id",
	}, LoanColumns("e", "e"))
}

func TestCategoryAndAuthorColumns(t *testing.T) {
	assert.Equal(t, []string{"category.id AS category_id", "category.name AS category_name"},
		CategoryColumns("category", "category"))
	assert.Equal(t, []string{"a.id AS author_id", "a.first_name AS author_first_name", "a.last_name AS author_last_name"},
		AuthorColumns("a", "author"))
}
