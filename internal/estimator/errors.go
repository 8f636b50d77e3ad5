package estimator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure kind of the engine
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input field was rejected and why
type InputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidInput and the underlying cause, if any
func (e *InputError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

func invalid(field, reason string, cause error) error {
	return &InputError{Field: field, Reason: reason, Err: cause}
}
