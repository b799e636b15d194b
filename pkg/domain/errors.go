package domain

import (
	"errors"
	"fmt"
)

// ErrOpNotFound is returned when a generic operation name has no transform
// registered in the catalog.
var ErrOpNotFound = errors.New("operation not found")

// OpError wraps a failure raised by an operation, carrying the cursor at the
// point of failure. Each nesting level of the interpreter re-wraps with its
// own cursor, so an enclosing Fork always reads the sub-cursor of its direct
// child pipeline.
type OpError struct {
	Name   string
	Cursor int
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operation %q failed at step %d: %v", e.Name, e.Cursor, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
