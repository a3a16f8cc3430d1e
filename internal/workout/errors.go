package workout

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a kind code is not one of RUN, WLK, SWM
var ErrUnknownKind = errors.New("unknown type of training")

// ErrArity is returned when the field count doesn't match the kind
var ErrArity = errors.New("wrong number of fields")

// ErrInvalidValue is returned when a field is non-finite or out of range
var ErrInvalidValue = errors.New("invalid field value")

// ErrNotImplemented is returned by the base calories formula. Every concrete
// kind supplies its own; reaching this means a Workout was built without Build.
var ErrNotImplemented = errors.New("calories formula not implemented for base training")

// FieldError describes a single rejected input field
type FieldError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidValue, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidValue
func (e *FieldError) Unwrap() error {
	return ErrInvalidValue
}
