package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

type AuthorRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Author, error)
	FindAll(ctx context.Context, page *Pageable) ([]*models.Author, error)
	Save(ctx context.Context, author *models.Author) (*models.Author, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type authorRepository struct {
	db *pgxpool.Pool
	em *EntityManager
}

func NewAuthorRepository(db *pgxpool.Pool, em *EntityManager) AuthorRepository {
	return &authorRepository{db: db, em: em}
}

func (r *authorRepository) query(ctx context.Context, where *Condition, page *Pageable) ([]*models.Author, error) {
	spec := SelectSpec{
		Table:   authorTable,
		Alias:   EntityAlias,
		Columns: AuthorColumns(EntityAlias, EntityAlias),
		Where:   where,
		Page:    page,
	}
	if page != nil {
		spec.Order = EntityAlias + ".id ASC"
	}
	sql, args := r.em.CreateSelect(spec)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	var result []*models.Author
	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		author, err := MapAuthor(row, EntityAlias)
		if err != nil {
			return nil, err
		}
		result = append(result, author)
	}
	return result, rows.Err()
}

func (r *authorRepository) FindByID(ctx context.Context, id int64) (*models.Author, error) {
	result, err := r.query(ctx, idEquals(EntityAlias, id), nil)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

func (r *authorRepository) FindAll(ctx context.Context, page *Pageable) ([]*models.Author, error) {
	return r.query(ctx, nil, page)
}

func (r *authorRepository) Save(ctx context.Context, author *models.Author) (*models.Author, error) {
	if author.ID == nil {
		const sql = `INSERT INTO author (first_name, last_name) VALUES ($1, $2) RETURNING id`
		var id int64
		if err := r.db.QueryRow(ctx, sql, author.FirstName, author.LastName).Scan(&id); err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		author.ID = &id
		return author, nil
	}

	const sql = `UPDATE author SET first_name = $1, last_name = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, sql, author.FirstName, author.LastName, *author.ID)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return author, nil
}

func (r *authorRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, authorTable, id)
}

func (r *authorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, authorTable, id)
}

func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, authorTable)
}
