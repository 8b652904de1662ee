package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryhub/internal/http-api/models"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	FindAll(ctx context.Context, page *Pageable) ([]*models.Category, error)
	Save(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db *pgxpool.Pool
	em *EntityManager
}

func NewCategoryRepository(db *pgxpool.Pool, em *EntityManager) CategoryRepository {
	return &categoryRepository{db: db, em: em}
}

func (r *categoryRepository) createQuery(where *Condition, page *Pageable) (string, []any) {
	spec := SelectSpec{
		Table:   categoryTable,
		Alias:   EntityAlias,
		Columns: CategoryColumns(EntityAlias, EntityAlias),
		Where:   where,
		Page:    page,
	}
	if page != nil {
		spec.Order = EntityAlias + ".id ASC"
	}
	return r.em.CreateSelect(spec)
}

func (r *categoryRepository) query(ctx context.Context, where *Condition, page *Pageable) ([]*models.Category, error) {
	sql, args := r.createQuery(where, page)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		row, err := RowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		category, err := MapCategory(row, EntityAlias)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	result, err := r.query(ctx, idEquals(EntityAlias, id), nil)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

func (r *categoryRepository) FindAll(ctx context.Context, page *Pageable) ([]*models.Category, error) {
	return r.query(ctx, nil, page)
}

func (r *categoryRepository) Save(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.ID == nil {
		const sql = `INSERT INTO category (name) VALUES ($1) RETURNING id`
		var id int64
		if err := r.db.QueryRow(ctx, sql, category.Name).Scan(&id); err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		category.ID = &id
		return category, nil
	}

	const sql = `UPDATE category SET name = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, sql, category.Name, *category.ID)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return category, nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, categoryTable, id)
}

func (r *categoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, categoryTable, id)
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, categoryTable)
}
