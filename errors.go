package formy

import (
	"errors"
	"fmt"
)

// Sentinel errors for formy. Use errors.Is to check.
var (
	ErrFormNotFound     = errors.New("form definition not found")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrUnknownKind      = errors.New("unknown field kind")
	ErrEmptyFieldName   = errors.New("empty field name")
	ErrNilValidator     = errors.New("nil validator")
	ErrUnknownValidator = errors.New("unknown validator")
)

// SchemaError reports a malformed field declaration at definition time.
// A registration that fails with SchemaError stores nothing; any previous
// definition under the same name is left untouched.
// Err wraps a sentinel (e.g. ErrDuplicateField) for errors.Is.
type SchemaError struct {
	Form  string
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("form %q: %v", e.Form, e.Err)
	}
	return fmt.Sprintf("form %q: field %q: %v", e.Form, e.Field, e.Err)
}

// Unwrap supports errors.Is/errors.As on the wrapped sentinel.
func (e *SchemaError) Unwrap() error { return e.Err }

// IsSchemaError returns true if err is or wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
