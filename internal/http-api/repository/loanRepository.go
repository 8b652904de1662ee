package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

type LoanRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Loan, error)
	FindAll(ctx context.Context, page *Pageable) ([]*models.Loan, error)
	Save(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type loanRepository struct {
	db *pgxpool.Pool
	em *EntityManager
}

func NewLoanRepository(db *pgxpool.Pool, em *EntityManager) LoanRepository {
	return &loanRepository{db: db, em: em}
}

func (r *loanRepository) createQuery(where *Condition, page *Pageable) (string, []any) {
	columns := LoanColumns(EntityAlias, EntityAlias)
	columns = append(columns, BookColumns("book", "book")...)
	columns = append(columns, ReaderColumns("member", "member")...)
	spec := SelectSpec{
		Table:   loanTable,
		Alias:   EntityAlias,
		Columns: columns,
		Joins: []Join{
			{Table: bookTable, Alias: "book", On: EntityAlias + ".book_id = book.id"},
			{Table: readerTable, Alias: "member", On: EntityAlias + ".member_id = member.id"},
		},
		Where: where,
		Page:  page,
	}
	if page != nil {
		spec.Order = EntityAlias + ".id ASC"
	}
	return r.em.CreateSelect(spec)
}

// process decodes one row carrying the prefixed columns of the loan, the
// joined book and the joined reader. Joined objects with a nil id came from
// an unmatched LEFT OUTER JOIN and are discarded.
func (r *loanRepository) process(row Row) (*models.Loan, error) {
	loan, err := MapLoan(row, EntityAlias)
	if err != nil {
		return nil, err
	}
	book, err := MapBook(row, "book")
	if err != nil {
		return nil, err
	}
	if book.ID != nil {
		loan.SetBook(book)
	}
	member, err := MapReader(row, "member")
	if err != nil {
		return nil, err
	}
	if member.ID != nil {
		loan.SetMember(member)
	}
	return loan, nil
}

func (r *loanRepository) query(ctx context.Context, where *Condition, page *Pageable) ([]*models.Loan, error) {
	sql, args := r.createQuery(where, page)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	var result []*models.Loan
	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		loan, err := r.process(row)
		if err != nil {
			return nil, err
		}
		result = append(result, loan)
	}
	return result, rows.Err()
}

func (r *loanRepository) FindByID(ctx context.Context, id int64) (*models.Loan, error) {
	result, err := r.query(ctx, idEquals(EntityAlias, id), nil)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

func (r *loanRepository) FindAll(ctx context.Context, page *Pageable) ([]*models.Loan, error) {
	return r.query(ctx, nil, page)
}

func (r *loanRepository) Save(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	if loan.ID == nil {
		const sql = `INSERT INTO loan (loan_date, return_date, book_id, member_id) VALUES ($1, $2, $3, $4) RETURNING id`
		var id int64
		err := r.db.QueryRow(ctx, sql,
			dateArg(loan.LoanDate), dateArg(loan.ReturnDate), loan.BookID, loan.MemberID,
		).Scan(&id)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		loan.ID = &id
		return loan, nil
	}

	const sql = `UPDATE loan SET loan_date = $1, return_date = $2, book_id = $3, member_id = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, sql,
		dateArg(loan.LoanDate), dateArg(loan.ReturnDate), loan.BookID, loan.MemberID, *loan.ID,
	)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return loan, nil
}

func (r *loanRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, loanTable, id)
}

func (r *loanRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, loanTable, id)
}

func (r *loanRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, loanTable)
}
