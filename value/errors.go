package value

import (
	"errors"
	"fmt"
)

var (
	ErrNilValue    = errors.New("value: nil value")
	ErrNilAccessor = errors.New("value: nil accessor")
	ErrReadOnly    = errors.New("value: read-only")
)

// PropertyError reports a failed access to a property-bound value.
type PropertyError struct {
	Property string
	Op       string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("value: %s %s: %v", e.Op, e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// ValidationError reports a value rejected by a validator.
type ValidationError struct {
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("value: invalid value %v: %v", e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
