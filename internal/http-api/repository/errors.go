package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup or update targets an identifier with
// no matching row.
var ErrNotFound = errors.New("entity not found")

// TypeConversionError reports a stored value that cannot be coerced to the
// requested type. It indicates data corruption or a schema mismatch and is
// never retried.
type TypeConversionError struct {
	Column string
	Want   string
	Value  any
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("column %s: cannot convert %v (%T) to %s", e.Column, e.Value, e.Value, e.Want)
}

// QueryError wraps a statement execution failure together with the statement
// text that produced it.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %v (query: %s)", e.Err, e.Query)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
