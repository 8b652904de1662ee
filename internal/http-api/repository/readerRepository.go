package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

type ReaderRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Reader, error)
	FindAll(ctx context.Context, page *Pageable) ([]*models.Reader, error)
	Save(ctx context.Context, reader *models.Reader) (*models.Reader, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type readerRepository struct {
	db *pgxpool.Pool
	em *EntityManager
}

func NewReaderRepository(db *pgxpool.Pool, em *EntityManager) ReaderRepository {
	return &readerRepository{db: db, em: em}
}

func (r *readerRepository) query(ctx context.Context, where *Condition, page *Pageable) ([]*models.Reader, error) {
	spec := SelectSpec{
		Table:   readerTable,
		Alias:   EntityAlias,
		Columns: ReaderColumns(EntityAlias, EntityAlias),
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

	var result []*models.Reader
	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		reader, err := MapReader(row, EntityAlias)
		if err != nil {
			return nil, err
		}
		result = append(result, reader)
	}
	return result, rows.Err()
}

func (r *readerRepository) FindByID(ctx context.Context, id int64) (*models.Reader, error) {
	result, err := r.query(ctx, idEquals(EntityAlias, id), nil)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

func (r *readerRepository) FindAll(ctx context.Context, page *Pageable) ([]*models.Reader, error) {
	return r.query(ctx, nil, page)
}

func (r *readerRepository) Save(ctx context.Context, reader *models.Reader) (*models.Reader, error) {
	if reader.ID == nil {
		const sql = `INSERT INTO reader (first_name, last_name, email, joined_date) VALUES ($1, $2, $3, $4) RETURNING id`
		var id int64
		err := r.db.QueryRow(ctx, sql, reader.FirstName, reader.LastName, reader.Email, dateArg(reader.JoinedDate)).Scan(&id)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		reader.ID = &id
		return reader, nil
	}

	const sql = `UPDATE reader SET first_name = $1, last_name = $2, email = $3, joined_date = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, sql, reader.FirstName, reader.LastName, reader.Email, dateArg(reader.JoinedDate), *reader.ID)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return reader, nil
}

func (r *readerRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, readerTable, id)
}

func (r *readerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, readerTable, id)
}

func (r *readerRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, readerTable)
}
