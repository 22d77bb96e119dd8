package app

import (
	"errors"
	"fmt"

	"github.com/dshills/keycalc/internal/dispatcher"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = dispatcher.ErrQuit

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called on a headless application.
	ErrNoBackend = errors.New("no backend")
)

// ComponentError represents an error from a specific component.
type ComponentError struct {
	Component string // Component name, e.g. "tape", "plugins", "config"
	Action    string // Action being performed
	Err       error  // Underlying error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Action:    action,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}

	if e.Action != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Component, e.Action, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Component, e.Action)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}

	return e.Component
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
