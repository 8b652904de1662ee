package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntityAlias is the row-alias prefix of the base table in every repository
// query.
const EntityAlias = "e"

// Pageable selects one page of a multi-row result.
type Pageable struct {
	Page int
	Size int
}

// Join is one LEFT OUTER JOIN clause with an explicit join condition.
type Join struct {
	Table string
	Alias string
	On    string
}

// Condition is a WHERE fragment using ? placeholders; CreateSelect renumbers
// them into positional parameters.
type Condition struct {
	Expr string
	Args []any
}

// SelectSpec is the structured input CreateSelect renders into a statement.
type SelectSpec struct {
	Table   string
	Alias   string
	Columns []string
	Joins   []Join
	Where   *Condition
	Order   string
	Page    *Pageable
}

// LinkTable describes a junction table by name and its two foreign key
// columns.
type LinkTable struct {
	Table        string
	OwnerColumn  string
	MemberColumn string
}

// EntityManager assembles SELECT statements from structured inputs and owns
// the generic link-table mutations. It executes nothing on its own except
// the link-table and bulk-delete primitives.
type EntityManager struct {
	db *pgxpool.Pool
}

func NewEntityManager(db *pgxpool.Pool) *EntityManager {
	return &EntityManager{db: db}
}

// CreateSelect renders spec into one SQL statement plus its positional
// arguments. Joins are always LEFT OUTER so an unmatched join target yields
// NULL for every one of its aliased columns.
func (em *EntityManager) CreateSelect(spec SelectSpec) (string, []any) {
	var sql strings.Builder
	var args []any

	sql.WriteString("SELECT ")
	sql.WriteString(strings.Join(spec.Columns, ", "))
	sql.WriteString(" FROM ")
	sql.WriteString(spec.Table)
	sql.WriteString(" ")
	sql.WriteString(spec.Alias)

	for _, join := range spec.Joins {
		sql.WriteString(" LEFT OUTER JOIN ")
		sql.WriteString(join.Table)
		sql.WriteString(" ")
		sql.WriteString(join.Alias)
		sql.WriteString(" ON ")
		sql.WriteString(join.On)
	}

	if spec.Where != nil {
		expr := spec.Where.Expr
		for i := range spec.Where.Args {
			expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", i+1), 1)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(expr)
		args = append(args, spec.Where.Args...)
	}

	if spec.Order != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(spec.Order)
	}

	if spec.Page != nil {
		fmt.Fprintf(&sql, " LIMIT %d OFFSET %d", spec.Page.Size, spec.Page.Page*spec.Page.Size)
	}

	return sql.String(), args
}

// UpdateLinkTable makes the junction rows for ownerID equal to exactly the
// given member set: delete-all-then-reinsert inside one transaction, with
// duplicates collapsed. An empty member set removes every row for the owner.
func (em *EntityManager) UpdateLinkTable(ctx context.Context, link LinkTable, ownerID int64, memberIDs []int64) error {
	tx, err := em.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin link table update: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", link.Table, link.OwnerColumn)
	if _, err := tx.Exec(ctx, deleteSQL, ownerID); err != nil {
		return &QueryError{Query: deleteSQL, Err: err}
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", link.Table, link.OwnerColumn, link.MemberColumn)
	seen := make(map[int64]struct{}, len(memberIDs))
	for _, memberID := range memberIDs {
		if _, dup := seen[memberID]; dup {
			continue
		}
		seen[memberID] = struct{}{}
		if _, err := tx.Exec(ctx, insertSQL, ownerID, memberID); err != nil {
			return &QueryError{Query: insertSQL, Err: err}
		}
	}

	return tx.Commit(ctx)
}

// DeleteFromLinkTable removes every junction row for ownerID. Called before
// deleting the owner's primary row.
func (em *EntityManager) DeleteFromLinkTable(ctx context.Context, link LinkTable, ownerID int64) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", link.Table, link.OwnerColumn)
	if _, err := em.db.Exec(ctx, sql, ownerID); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}

// DeleteAll removes every row of a table. Whole-table reset, not coupled to
// any other statement.
func (em *EntityManager) DeleteAll(ctx context.Context, table string) error {
	sql := "DELETE FROM " + table
	if _, err := em.db.Exec(ctx, sql); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}
