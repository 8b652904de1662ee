package repository

import "fmt"

// Per-entity column helpers. Each returns the aliased column expressions for
// one table occurrence in a joined SELECT: the same physical column yields a
// different output alias per prefix, which keeps one table decodable at
// several join positions of the same row. The unprefixed column set and its
// order are fixed and must agree with the paired row mapper.

func aliased(table, prefix string, columns ...string) []string {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		out = append(out, fmt.Sprintf("%s.%s AS %s_%s", table, col, prefix, col))
	}
	return out
}

func BookColumns(table, prefix string) []string {
	return aliased(table, prefix, "id", "title", "publication_date", "copies_owned", "status", "category_id")
}

func AuthorColumns(table, prefix string) []string {
	return aliased(table, prefix, "id", "first_name", "last_name")
}

func CategoryColumns(table, prefix string) []string {
	return aliased(table, prefix, "id", "name")
}

func ReaderColumns(table, prefix string) []string {
	return aliased(table, prefix, "id", "first_name", "last_name", "email", "joined_date")
}

func LoanColumns(table, prefix string) []string {
	return aliased(table, prefix, "id", "loan_date", "return_date", "book_id", "member_id")
}
