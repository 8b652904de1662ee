package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/http-api/models"
)

func TestInt64Column(t *testing.T) {
	row := Row{"e_id": int64(42), "e_small": int32(7), "e_null": nil}

	got, err := Int64Column(row, "e_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *got)

	got, err = Int64Column(row, "e_small")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *got)

	got, err = Int64Column(row, "e_null")
	require.NoError(t, err)
	assert.Nil(t, got)

	// absent column decodes like NULL
	got, err = Int64Column(row, "e_missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Int64Column(Row{"e_id": "42"}, "e_id")
	var convErr *TypeConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "e_id", convErr.Column)
}

func TestStringColumn(t *testing.T) {
	row := Row{"e_title": "Dune", "e_null": nil}

	got, err := StringColumn(row, "e_title")
	require.NoError(t, err)
	assert.Equal(t, "Dune", *got)

	got, err = StringColumn(row, "e_null")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = StringColumn(Row{"e_title": int64(1)}, "e_title")
	assert.Error(t, err)
}

func TestDateColumn(t *testing.T) {
	row := Row{
		"e_loan_date":   time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC),
		"e_return_date": nil,
		"e_text_date":   "2025-01-25",
	}

	got, err := DateColumn(row, "e_loan_date")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-25", got.String())

	got, err = DateColumn(row, "e_return_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DateColumn(row, "e_text_date")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-25", got.String())

	_, err = DateColumn(Row{"e_loan_date": int64(20250125)}, "e_loan_date")
	assert.Error(t, err)
}

func TestStatusColumn(t *testing.T) {
	got, err := StatusColumn(Row{"e_status": "AVAILABLE"}, "e_status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, *got)

	got, err = StatusColumn(Row{"e_status": nil}, "e_status")
	require.NoError(t, err)
	assert.Nil(t, got)

	// malformed enum label is a conversion failure, not a zero value
	_, err = StatusColumn(Row{"e_status": "LOST"}, "e_status")
	var convErr *TypeConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "book status", convErr.Want)
}
