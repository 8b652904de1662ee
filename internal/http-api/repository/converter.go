package repository

import (
	"time"

	"github.com/jackc/pgx/v5"

	"libraryhub/internal/http-api/models"
)

// Row is one decoded result row keyed by output column alias. Join queries
// produce rows whose aliases carry a per-table prefix, so a single Row can
// hold the raw columns of two or three distinct entities.
type Row map[string]any

// RowFromPgx materializes the current row of rows into a Row. It must be
// called between rows.Next() and the next cursor advance.
func RowFromPgx(rows pgx.Rows) (Row, error) {
	decoded, err := rows.Values()
	if err != nil {
		return nil, err
	}
	row := make(Row, len(decoded))
	for i, fd := range rows.FieldDescriptions() {
		row[fd.Name] = decoded[i]
	}
	return row, nil
}

// Int64Column extracts a 64-bit integer column. SQL NULL and absent columns
// both decode to nil.
func Int64Column(row Row, column string) (*int64, error) {
	value, ok := row[column]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case int64:
		return &v, nil
	case int32:
		n := int64(v)
		return &n, nil
	case int16:
		n := int64(v)
		return &n, nil
	case int:
		n := int64(v)
		return &n, nil
	}
	return nil, &TypeConversionError{Column: column, Want: "int64", Value: value}
}

func IntColumn(row Row, column string) (*int, error) {
	wide, err := Int64Column(row, column)
	if err != nil {
		return nil, &TypeConversionError{Column: column, Want: "int", Value: row[column]}
	}
	if wide == nil {
		return nil, nil
	}
	n := int(*wide)
	return &n, nil
}

func StringColumn(row Row, column string) (*string, error) {
	value, ok := row[column]
	if !ok || value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, &TypeConversionError{Column: column, Want: "string", Value: value}
	}
	return &s, nil
}

func DateColumn(row Row, column string) (*models.Date, error) {
	value, ok := row[column]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case time.Time:
		d := models.DateOf(v)
		return &d, nil
	case string:
		d, err := models.ParseDate(v)
		if err != nil {
			return nil, &TypeConversionError{Column: column, Want: "date", Value: value}
		}
		return &d, nil
	}
	return nil, &TypeConversionError{Column: column, Want: "date", Value: value}
}

// StatusColumn extracts a book status label, rejecting labels outside the
// enum.
func StatusColumn(row Row, column string) (*models.BookStatus, error) {
	label, err := StringColumn(row, column)
	if err != nil {
		return nil, &TypeConversionError{Column: column, Want: "book status", Value: row[column]}
	}
	if label == nil {
		return nil, nil
	}
	status := models.BookStatus(*label)
	if !status.Valid() {
		return nil, &TypeConversionError{Column: column, Want: "book status", Value: *label}
	}
	return &status, nil
}
