package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

// BookAuthorLink is the junction table carrying the book-author association.
// Its rows are owned by the book repository: every save replaces the full
// set for the book, and a delete clears it before the book row goes.
var BookAuthorLink = LinkTable{Table: "rel_book__author", OwnerColumn: "book_id", MemberColumn: "author_id"}

type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	FindAll(ctx context.Context, page *Pageable) ([]*models.Book, error)
	Save(ctx context.Context, book *models.Book) (*models.Book, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type bookRepository struct {
	db *pgxpool.Pool
	em *EntityManager
}

func NewBookRepository(db *pgxpool.Pool, em *EntityManager) BookRepository {
	return &bookRepository{db: db, em: em}
}

func (r *bookRepository) createQuery(where *Condition, page *Pageable) (string, []any) {
	columns := BookColumns(EntityAlias, EntityAlias)
	columns = append(columns, CategoryColumns("category", "category")...)
	spec := SelectSpec{
		Table:   bookTable,
		Alias:   EntityAlias,
		Columns: columns,
		Joins: []Join{
			{Table: categoryTable, Alias: "category", On: EntityAlias + ".category_id = category.id"},
		},
		Where: where,
		Page:  page,
	}
	if page != nil {
		spec.Order = EntityAlias + ".id ASC"
	}
	return r.em.CreateSelect(spec)
}

// process decodes one joined row into a book with its category attached. An
// unmatched category join decodes to an all-NULL object, recognizable by its
// nil id, and is discarded rather than attached.
func (r *bookRepository) process(row Row) (*models.Book, error) {
	book, err := MapBook(row, EntityAlias)
	if err != nil {
		return nil, err
	}
	category, err := MapCategory(row, "category")
	if err != nil {
		return nil, err
	}
	if category.ID != nil {
		book.SetCategory(category)
	}
	return book, nil
}

func (r *bookRepository) query(ctx context.Context, where *Condition, page *Pageable) ([]*models.Book, error) {
	sql, args := r.createQuery(where, page)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	var result []*models.Book
	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		book, err := r.process(row)
		if err != nil {
			return nil, err
		}
		result = append(result, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadAuthors(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// loadAuthors hydrates the author sets of the given books with one grouped
// query over the junction join.
func (r *bookRepository) loadAuthors(ctx context.Context, books []*models.Book) error {
	ids := make([]int64, 0, len(books))
	byID := make(map[int64]*models.Book, len(books))
	for _, book := range books {
		if book.ID != nil {
			ids = append(ids, *book.ID)
			byID[*book.ID] = book
		}
	}
	if len(ids) == 0 {
		return nil
	}

	columns := append([]string{"rel.book_id AS rel_book_id"}, AuthorColumns("author", "author")...)
	sql, args := r.em.CreateSelect(SelectSpec{
		Table:   BookAuthorLink.Table,
		Alias:   "rel",
		Columns: columns,
		Joins: []Join{
			{Table: authorTable, Alias: "author", On: "rel.author_id = author.id"},
		},
		Where: &Condition{Expr: "rel.book_id = ANY(?)", Args: []any{ids}},
		Order: "author.id ASC",
	})

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return err
		}
		bookID, err := Int64Column(row, "rel_book_id")
		if err != nil {
			return err
		}
		author, err := MapAuthor(row, "author")
		if err != nil {
			return err
		}
		if bookID == nil || author.ID == nil {
			continue
		}
		if book, ok := byID[*bookID]; ok {
			book.Authors = append(book.Authors, *author)
		}
	}
	return rows.Err()
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	result, err := r.query(ctx, idEquals(EntityAlias, id), nil)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

func (r *bookRepository) FindAll(ctx context.Context, page *Pageable) ([]*models.Book, error) {
	return r.query(ctx, nil, page)
}

// Save is a two-step protocol: persist the book row, then replace the
// junction rows with the current author id set. The steps are sequenced, not
// wrapped in one transaction; a failure between them leaves the book row
// persisted with its prior relation set, detectable by re-reading.
func (r *bookRepository) Save(ctx context.Context, book *models.Book) (*models.Book, error) {
	if book.ID == nil {
		const sql = `INSERT INTO book (title, publication_date, copies_owned, status, category_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`
		var id int64
		err := r.db.QueryRow(ctx, sql,
			book.Title, dateArg(book.PublicationDate), book.CopiesOwned, statusArg(book.Status), book.CategoryID,
		).Scan(&id)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		book.ID = &id
	} else {
		const sql = `UPDATE book SET title = $1, publication_date = $2, copies_owned = $3, status = $4, category_id = $5
			WHERE id = $6`
		tag, err := r.db.Exec(ctx, sql,
			book.Title, dateArg(book.PublicationDate), book.CopiesOwned, statusArg(book.Status), book.CategoryID, *book.ID,
		)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
	}

	if err := r.em.UpdateLinkTable(ctx, BookAuthorLink, *book.ID, book.AuthorIDs()); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteByID clears the junction rows first, then the book row. The order
// favors junction-table cleanliness over strict atomicity.
func (r *bookRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.em.DeleteFromLinkTable(ctx, BookAuthorLink, id); err != nil {
		return err
	}
	return deleteRow(ctx, r.db, bookTable, id)
}

func (r *bookRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, bookTable, id)
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, bookTable)
}
