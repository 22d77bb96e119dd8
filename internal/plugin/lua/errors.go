package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a call runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNotNumber is returned when a function returns a non-number.
	ErrNotNumber = errors.New("lua function did not return a number")

	// ErrUnknownFunction is returned when calling a name no script registered.
	ErrUnknownFunction = errors.New("no lua function registered")
)

// ScriptError ties an error to the script file that caused it.
type ScriptError struct {
	File string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
