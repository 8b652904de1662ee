package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

const (
	bookTable     = "book"
	authorTable   = "author"
	categoryTable = "category"
	readerTable   = "reader"
	loanTable     = "loan"
)

func idEquals(alias string, id int64) *Condition {
	return &Condition{Expr: alias + ".id = ?", Args: []any{id}}
}

// dateArg unwraps a nullable date for statement parameters; pgx encodes the
// inner time.Time natively.
func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func statusArg(s *models.BookStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}

func existsByID(ctx context.Context, db *pgxpool.Pool, table string, id int64) (bool, error) {
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table)
	var exists bool
	if err := db.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, &QueryError{Query: sql, Err: err}
	}
	return exists, nil
}

func countRows(ctx context.Context, db *pgxpool.Pool, table string) (int64, error) {
	sql := "SELECT COUNT(*) FROM " + table
	var count int64
	if err := db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, &QueryError{Query: sql, Err: err}
	}
	return count, nil
}

// deleteRow issues the delete unconditionally; deleting an absent id is not
// an error.
func deleteRow(ctx context.Context, db *pgxpool.Pool, table string, id int64) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	if _, err := db.Exec(ctx, sql, id); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}
