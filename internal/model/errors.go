package model

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a request is malformed or lacks a
// required field.
type ValidationError struct {
	Reason string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid returns a ValidationError with the given reason.
func Invalid(reason string, err error) *ValidationError {
	return &ValidationError{Reason: reason, Err: err}
}

// MissingFields returns a ValidationError naming the absent fields.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Reason: "missing required field(s): " + strings.Join(fields, ", "),
		Fields: fields,
	}
}
