package facet

import (
	"errors"
	"fmt"

	"github.com/hupe1980/facet/catalog"
)

var (
	// ErrUnknownField is returned for fields without a filter group.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownValue is returned for values without a filter item.
	ErrUnknownValue = errors.New("unknown value")

	// ErrNotSearchable is returned by SetSearch for fields without text search.
	ErrNotSearchable = errors.New("field has no text search")
)

// FieldError reports which field an operation failed for.
type FieldError struct {
	Field catalog.FieldID
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }
