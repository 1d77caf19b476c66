package predicate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is returned for an unknown predicate data type.
	ErrInvalidType = errors.New("invalid predicate type")

	// ErrInvalidOp is returned when an operator does not fit the data type.
	ErrInvalidOp = errors.New("invalid predicate operator")

	// ErrMissingAccessor is returned for a leaf without role and accessor.
	ErrMissingAccessor = errors.New("predicate needs a role or an accessor")

	// ErrInvalidOperand is returned when an operand cannot be used for the type.
	ErrInvalidOperand = errors.New("invalid predicate operand")

	// ErrInvalidDate is returned when a value cannot be read as a date.
	ErrInvalidDate = errors.New("invalid date value")
)

// SpecError describes why a predicate could not be constructed.
//
// The sentinel cause can be matched with errors.Is.
type SpecError struct {
	ID     string
	Detail string
	cause  error
}

func (e *SpecError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("predicate %q: %v", e.ID, e.cause)
	}
	return fmt.Sprintf("predicate %q: %v: %s", e.ID, e.cause, e.Detail)
}

func (e *SpecError) Unwrap() error { return e.cause }

// OpError is the panic value raised when a predicate is evaluated with an
// operator its type does not support. This can only happen for predicates
// that bypassed construction-time validation.
type OpError struct {
	Type DataType
	Op   Op
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operator %q is not valid for predicate type %q", e.Op, e.Type)
}

func (e *OpError) Unwrap() error { return ErrInvalidOp }

func specError(id string, cause error, format string, args ...any) *SpecError {
	return &SpecError{ID: id, Detail: fmt.Sprintf(format, args...), cause: cause}
}
