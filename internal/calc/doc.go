// Package calc provides the calculation engine behind keycalc.
//
// The engine interprets the text of a single display buffer and a stream of
// keystroke-level operations (digits, operators, equals, unary functions,
// radix conversion and statistical aggregates) into an evolving numeric result.
//
// # State
//
// An Engine holds five pieces of session state:
//
//   - the display buffer, the text currently shown to the user
//   - the accumulator, the last computed result
//   - the pending operator, applied when the next operand is finalized
//   - the entry-continuation flag, true while the user is typing an operand
//   - the append flag, true while digits extend the buffer instead of replacing it
//
// Every operation runs to completion synchronously and pushes the resulting
// buffer to the configured DisplaySink before returning.
//
// # Errors
//
// Two failure kinds exist. ErrInvalidOperand is returned when an operator is
// pressed while the buffer is not a numeric literal; the operation is a silent
// no-op and nothing is shown to the user. A *FormatError is returned when radix
// conversion or aggregation cannot parse the buffer; its message is delivered to
// the Notifier. In both cases the engine state is left exactly as it was.
//
// # Basic Usage
//
//	e := calc.New()
//	e.Digit('5')
//	e.Binary(calc.OpAdd)
//	e.Digit('3')
//	e.Equals()
//	e.Display() // "8"
//
// An Engine is not safe for concurrent use; it is driven by a single input loop.
package calc
