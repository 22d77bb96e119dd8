package calc

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrInvalidOperand indicates the display buffer is not a numeric literal.
	// Callers treat it as a silent no-op.
	ErrInvalidOperand = errors.New("display is not a number")

	// ErrNotDigit indicates a non-digit rune was passed to Digit.
	ErrNotDigit = errors.New("not a decimal digit")

	// ErrUnknownOperator indicates an operator that the operation does not accept.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownFunction indicates a unary function name that is not registered.
	ErrUnknownFunction = errors.New("unknown function")
)

// Notice texts shown to the user on format failures.
const (
	msgBinary    = "Invalid integer for binary conversion!"
	msgHex       = "Invalid integer for hex conversion!"
	msgAggregate = "Invalid format! Enter numbers like: 10,20,30"
)

// FormatError reports display text that could not be parsed by a radix
// conversion or a statistical aggregate.
type FormatError struct {
	Op      string // Operation name (e.g., "bin", "mean")
	Input   string // Display text that failed to parse
	Message string // User-facing description of the expected input
	Err     error  // Underlying parse error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %s: %v", e.Op, e.Input, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Input, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
