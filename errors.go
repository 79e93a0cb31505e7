package gradient

import (
	"errors"
	"fmt"
)

var (
	// ErrCreate is returned when the output file cannot be created
	ErrCreate = errors.New("cannot create output")
	// ErrWrite is returned when any write to the output fails
	ErrWrite = errors.New("write failed")
)

// Error records a failed generation run and the state it had reached.
type Error struct {
	Kind  error
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gradient: %v (%v): %v", e.Kind, e.State, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool { return target == e.Kind }
