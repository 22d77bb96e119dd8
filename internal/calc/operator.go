package calc

import (
	"fmt"
	"math"
)

// Operator identifies the operation pending on the accumulator.
type Operator uint8

const (
	// OpNone is the initial state; applying it passes the operand through.
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpSqrt
	OpLn
	OpEquals
	// OpFunc marks a user-registered unary function.
	OpFunc
)

// String returns the key label of the operator.
func (op Operator) String() string {
	switch op {
	case OpNone:
		return ""
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpSqrt:
		return "√"
	case OpLn:
		return "ln"
	case OpEquals:
		return "="
	case OpFunc:
		return "fn"
	default:
		return fmt.Sprintf("Operator(%d)", op)
	}
}

// IsBinary returns true for operators that take the accumulator and an operand.
func (op Operator) IsBinary() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return true
	default:
		return false
	}
}

// ParseOperator parses a binary operator key label.
// Both ASCII and typographic forms are accepted ("*" and "×", "/" and "÷").
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-", "−":
		return OpSub, nil
	case "*", "×", "x":
		return OpMul, nil
	case "/", "÷":
		return OpDiv, nil
	case "%", "mod":
		return OpMod, nil
	case "^", "pow":
		return OpPow, nil
	default:
		return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Apply combines a and b with op.
//
// Division follows IEEE 754, so a zero divisor yields ±Inf or NaN rather than an
// error. Modulo is the floating remainder with the sign of the dividend. Any
// operator that is not binary returns b unchanged, which is how the first operand
// of a calculation becomes the base value.
func Apply(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		return math.Mod(a, b)
	case OpPow:
		return math.Pow(a, b)
	default:
		return b
	}
}
