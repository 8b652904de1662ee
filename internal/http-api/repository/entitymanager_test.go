package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSelectBase(t *testing.T) {
	em := &EntityManager{}
	sql, args := em.CreateSelect(SelectSpec{
		Table:   "category",
		Alias:   "e",
		Columns: CategoryColumns("e", "e"),
	})

	assert.Equal(t, "SELECT e.id AS e_id, e.name AS e_name FROM category e", sql)
	assert.Empty(t, args)
}

func TestCreateSelectWithJoinAndWhere(t *testing.T) {
	em := &EntityManager{}
	columns := append(BookColumns("e", "e"), CategoryColumns("category", "category")...)
	sql, args := em.CreateSelect(SelectSpec{
		Table:   "book",
		Alias:   "e",
		Columns: columns,
		Joins: []Join{
			{Table: "category", Alias: "category", On: "e.category_id = category.id"},
		},
		Where: &Condition{Expr: "e.id = ?", Args: []any{int64(77)}},
	})

	assert.Contains(t, sql, "FROM book e LEFT OUTER JOIN category category ON e.category_id = category.id")
	assert.Contains(t, sql, "WHERE e.id = $1")
	assert.Contains(t, sql, "e.title AS e_title")
	assert.Contains(t, sql, "category.name AS category_name")
	assert.Equal(t, []any{int64(77)}, args)
}

func TestCreateSelectWithTwoJoins(t *testing.T) {
	em := &EntityManager{}
	columns := LoanColumns("e", "e")
	columns = append(columns, BookColumns("book", "book")...)
	columns = append(columns, ReaderColumns("member", "member")...)
	sql, _ := em.CreateSelect(SelectSpec{
		Table:   "loan",
		Alias:   "e",
		Columns: columns,
		Joins: []Join{
			{Table: "book", Alias: "book", On: "e.book_id = book.id"},
			{Table: "reader", Alias: "member", On: "e.member_id = member.id"},
		},
	})

	assert.Contains(t, sql, "LEFT OUTER JOIN book book ON e.book_id = book.id")
	assert.Contains(t, sql, "LEFT OUTER JOIN reader member ON e.member_id = member.id")
	// the reader table is selectable under its join position's prefix
	assert.Contains(t, sql, "member.email AS member_email")
}

func TestCreateSelectPagination(t *testing.T) {
	em := &EntityManager{}
	sql, _ := em.CreateSelect(SelectSpec{
		Table:   "book",
		Alias:   "e",
		Columns: BookColumns("e", "e"),
		Order:   "e.id ASC",
		Page:    &Pageable{Page: 2, Size: 20},
	})

	assert.Contains(t, sql, "ORDER BY e.id ASC")
	assert.Contains(t, sql, "LIMIT 20 OFFSET 40")
}

func TestCreateSelectMultipleConditionArgs(t *testing.T) {
	em := &EntityManager{}
	sql, args := em.CreateSelect(SelectSpec{
		Table:   "loan",
		Alias:   "e",
		Columns: LoanColumns("e", "e"),
		Where:   &Condition{Expr: "e.book_id = ? AND e.member_id = ?", Args: []any{int64(1), int64(2)}},
	})

	assert.Contains(t, sql, "WHERE e.book_id = $1 AND e.member_id = $2")
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}
