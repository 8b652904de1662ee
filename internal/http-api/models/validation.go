package models

import "fmt"

// ValidationError reports a required-field or constraint violation detected
// before any statement reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}
