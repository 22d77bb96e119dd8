package calc

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// UnaryFunc is a single-argument function usable as a unary key.
type UnaryFunc func(x float64) float64

// builtinFuncs are the scientific unary keys and their pending-operator markers.
var builtinFuncs = map[string]struct {
	op Operator
	fn UnaryFunc
}{
	"sqrt": {OpSqrt, math.Sqrt},
	"ln":   {OpLn, math.Log},
}

// State is a snapshot of the engine's session state.
type State struct {
	Display     string
	Accumulator float64
	Pending     Operator
	PendingFunc string // Function name when Pending is OpFunc
	Entering    bool   // An operand is being typed
	Appending   bool   // Digits extend the display instead of replacing it
}

// Engine is the calculator state machine.
type Engine struct {
	buffer      string
	acc         float64
	pending     Operator
	pendingFunc string
	entering    bool
	appending   bool

	funcs map[string]UnaryFunc

	display  DisplaySink
	notifier Notifier
	observer Observer
}

// New creates an engine in the reset state.
func New(opts ...Option) *Engine {
	e := &Engine{
		funcs:    make(map[string]UnaryFunc),
		display:  discardSink{},
		notifier: discardSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

// Display returns the current display buffer.
func (e *Engine) Display() string {
	return e.buffer
}

// Accumulator returns the last computed result.
func (e *Engine) Accumulator() float64 {
	return e.acc
}

// Pending returns the pending operator.
func (e *Engine) Pending() Operator {
	return e.pending
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return State{
		Display:     e.buffer,
		Accumulator: e.acc,
		Pending:     e.pending,
		PendingFunc: e.pendingFunc,
		Entering:    e.entering,
		Appending:   e.appending,
	}
}

// RegisterFunc adds a named unary function.
// Built-in names cannot be replaced; registering an existing custom name replaces it.
func (e *Engine) RegisterFunc(name string, fn UnaryFunc) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return fmt.Errorf("%w: empty name or nil function", ErrUnknownFunction)
	}
	if _, ok := builtinFuncs[name]; ok {
		return fmt.Errorf("cannot replace built-in function %q", name)
	}
	e.funcs[name] = fn
	return nil
}

// Funcs returns the names of all registered custom functions, sorted.
func (e *Engine) Funcs() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasFunc returns true if name is a built-in or registered unary function.
func (e *Engine) HasFunc(name string) bool {
	if _, ok := builtinFuncs[name]; ok {
		return true
	}
	_, ok := e.funcs[name]
	return ok
}

// Digit enters a single decimal digit.
func (e *Engine) Digit(d rune) error {
	if d < '0' || d > '9' {
		return fmt.Errorf("%w: %q", ErrNotDigit, d)
	}
	switch {
	case !e.appending:
		e.setBuffer(string(d))
		e.appending = true
	case zeroPattern.MatchString(e.buffer):
		e.setBuffer(string(d))
	default:
		e.setBuffer(e.buffer + string(d))
	}
	e.entering = true
	return nil
}

// Point enters the decimal separator.
// A second point in the same operand is ignored.
func (e *Engine) Point() {
	if e.appending {
		if !strings.Contains(lastToken(e.buffer), ".") {
			e.setBuffer(e.buffer + ".")
		}
	} else {
		e.setBuffer("0.")
		e.appending = true
	}
	e.entering = true
}

// Separator appends a list separator so several values can be entered for an
// aggregate.
func (e *Engine) Separator() {
	if !strings.HasSuffix(e.buffer, ",") {
		e.setBuffer(e.buffer + ",")
	}
	e.appending = true
	e.entering = true
}

// Binary presses a binary operator key.
//
// While an operand is being entered the pending operation is evaluated first.
// Otherwise the pending operator is replaced, so the user can change their mind
// without re-evaluating. OpMod is routed to Modulo.
func (e *Engine) Binary(op Operator) error {
	if op == OpMod {
		return e.Modulo()
	}
	if !op.IsBinary() {
		return fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
	if !IsNumber(e.buffer) {
		return ErrInvalidOperand
	}
	if e.entering {
		if err := e.evaluate(); err != nil {
			return err
		}
		e.entering = false
		e.appending = false
	}
	e.setPending(op, "")
	return nil
}

// Modulo presses the modulo key. Unlike the other binary keys it evaluates the
// pending operation even when no new operand has been typed.
func (e *Engine) Modulo() error {
	if !IsNumber(e.buffer) {
		return ErrInvalidOperand
	}
	if err := e.evaluate(); err != nil {
		return err
	}
	e.setPending(OpMod, "")
	e.entering = false
	e.appending = false
	return nil
}

// Equals evaluates the pending operation when an operand is being entered.
// Afterwards the pending operator is OpEquals, which passes the display through,
// so repeated presses do not re-apply the last operator.
func (e *Engine) Equals() error {
	if !IsNumber(e.buffer) {
		return ErrInvalidOperand
	}
	if !e.entering {
		return nil
	}
	if err := e.evaluate(); err != nil {
		return err
	}
	e.setPending(OpEquals, "")
	e.appending = false
	return nil
}

// Unary applies a named unary function ("sqrt", "ln", or a registered name) to
// the operand being entered. It is a no-op when no operand has been entered.
func (e *Engine) Unary(name string) error {
	op, fn, err := e.lookupFunc(name)
	if err != nil {
		return err
	}
	v, err := parseOperand(e.buffer)
	if err != nil {
		return err
	}
	if !e.entering {
		return nil
	}

	e.acc = fn(v)
	e.showResult()
	if op == OpFunc {
		e.setPending(op, name)
	} else {
		e.setPending(op, "")
	}
	e.appending = false

	label := name
	if op == OpSqrt {
		label = OpSqrt.String()
	}
	e.observe(fmt.Sprintf("%s(%s)", label, Render(v)), e.acc)
	return nil
}

// Backspace removes the last character, leaving "0" rather than an empty display.
func (e *Engine) Backspace() {
	if utf8.RuneCountInString(e.buffer) > 1 {
		_, size := utf8.DecodeLastRuneInString(e.buffer)
		e.setBuffer(e.buffer[:len(e.buffer)-size])
		return
	}
	e.setBuffer("0")
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear() {
	e.reset()
}

func (e *Engine) reset() {
	e.acc = 0
	e.pending = OpNone
	e.pendingFunc = ""
	e.entering = true
	e.appending = true
	e.setBuffer("0")
}

func (e *Engine) lookupFunc(name string) (Operator, UnaryFunc, error) {
	switch name {
	case "√", "root":
		name = "sqrt"
	case "log":
		name = "ln"
	}
	if b, ok := builtinFuncs[name]; ok {
		return b.op, b.fn, nil
	}
	if fn, ok := e.funcs[name]; ok {
		return OpFunc, fn, nil
	}
	return OpNone, nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// evaluate applies the pending operator to the accumulator and the buffer.
func (e *Engine) evaluate() error {
	v, err := parseOperand(e.buffer)
	if err != nil {
		return err
	}
	left, op := e.acc, e.pending
	e.acc = Apply(left, v, op)
	e.showResult()
	if op.IsBinary() {
		e.observe(fmt.Sprintf("%s %s %s", Render(left), op, Render(v)), e.acc)
	}
	return nil
}

func (e *Engine) showResult() {
	e.setBuffer(Render(e.acc))
}

func (e *Engine) setPending(op Operator, fn string) {
	e.pending = op
	e.pendingFunc = fn
}

func (e *Engine) setBuffer(text string) {
	e.buffer = text
	e.display.SetDisplay(text)
}

func (e *Engine) observe(expr string, result float64) {
	if e.observer == nil {
		return
	}
	e.observer(Evaluation{Expr: expr, Result: result, Display: e.buffer})
}

// fail reports a format error to the notifier and returns it.
func (e *Engine) fail(fe *FormatError) error {
	e.notifier.Notify(fe.Message)
	return fe
}
