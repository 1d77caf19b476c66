package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPayload is returned when a leaf payload has a shape the
	// catalog cannot extract fields from, such as a bare list.
	ErrUnsupportedPayload = errors.New("unsupported payload")

	// ErrSchema wraps failures and panics of the schema collaborator.
	ErrSchema = errors.New("schema lookup failed")

	// ErrUnknownCodec is returned by ParseConfig for unknown codec names.
	ErrUnknownCodec = errors.New("unknown codec")
)

// ExtractError aborts a traversal. The catalog state after the failed pass is
// described on Build and UpdateFields.
type ExtractError struct {
	Field FieldID
	Shape Shape
	Type  string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("catalog: cannot extract fields from %s payload (%s) of role %q", e.Shape, e.Type, e.Field.Role)
}

func (e *ExtractError) Unwrap() error { return ErrUnsupportedPayload }
