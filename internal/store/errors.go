package store

import "errors"

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("item not found")

// Error wraps a failure reported by the database engine.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}
