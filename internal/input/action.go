package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input/mode"
)

// ErrInvalidAction is returned when an action string cannot be parsed.
var ErrInvalidAction = errors.New("invalid action")

// Kind identifies what an action does.
type Kind uint8

const (
	KindNone Kind = iota
	KindDigit
	KindPoint
	KindSeparator
	KindOperator
	KindEquals
	KindBackspace
	KindClear
	KindUnary
	KindRadix
	KindAggregate
	KindModeChange

	// KindTheme and KindQuit are handled by the application, not the engine.
	KindTheme
	KindQuit
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindDigit:      "digit",
	KindPoint:      "point",
	KindSeparator:  "sep",
	KindOperator:   "op",
	KindEquals:     "equals",
	KindBackspace:  "back",
	KindClear:      "clear",
	KindUnary:      "unary",
	KindRadix:      "radix",
	KindAggregate:  "agg",
	KindModeChange: "mode",
	KindTheme:      "theme",
	KindQuit:       "quit",
}

// String returns the textual name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceKeyboard indicates the action came from a key press.
	SourceKeyboard Source = iota
	// SourceScript indicates the action came from an eval script.
	SourceScript
	// SourcePlugin indicates the action came from a plugin.
	SourcePlugin
)

// String returns a string representation of the action source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceScript:
		return "script"
	case SourcePlugin:
		return "plugin"
	default:
		return "unknown"
	}
}

// Action is a discrete input event for the calculator.
// Only the field matching Kind is meaningful.
type Action struct {
	Kind Kind

	// Digit is the character for KindDigit.
	Digit rune

	// Op is the binary operator for KindOperator.
	Op calc.Operator

	// Func names the unary function for KindUnary.
	Func string

	// Radix is the target base for KindRadix.
	Radix calc.Radix

	// Aggregate is the reduction for KindAggregate.
	Aggregate calc.Aggregate

	// Mode is the target for KindModeChange.
	Mode mode.Mode

	// Theme is a theme name, or "next", for KindTheme.
	Theme string

	// Source records where the action came from.
	Source Source
}

// Digit returns a digit action.
func Digit(d rune) Action { return Action{Kind: KindDigit, Digit: d} }

// Point returns a decimal point action.
func Point() Action { return Action{Kind: KindPoint} }

// Separator returns a list separator action.
func Separator() Action { return Action{Kind: KindSeparator} }

// Operator returns a binary operator action.
func Operator(op calc.Operator) Action { return Action{Kind: KindOperator, Op: op} }

// Equals returns an equals action.
func Equals() Action { return Action{Kind: KindEquals} }

// Backspace returns a backspace action.
func Backspace() Action { return Action{Kind: KindBackspace} }

// Clear returns a clear action.
func Clear() Action { return Action{Kind: KindClear} }

// Unary returns a unary function action.
func Unary(name string) Action { return Action{Kind: KindUnary, Func: name} }

// Radix returns a radix conversion action.
func Radix(r calc.Radix) Action { return Action{Kind: KindRadix, Radix: r} }

// Aggregate returns a statistics aggregate action.
func Aggregate(a calc.Aggregate) Action { return Action{Kind: KindAggregate, Aggregate: a} }

// ModeChange returns a mode switch action.
func ModeChange(m mode.Mode) Action { return Action{Kind: KindModeChange, Mode: m} }

// Theme returns a theme switch action.
func Theme(name string) Action { return Action{Kind: KindTheme, Theme: name} }

// Quit returns the quit action.
func Quit() Action { return Action{Kind: KindQuit} }

// Capability returns what the active mode must allow for this action.
func (a Action) Capability() mode.Capability {
	switch a.Kind {
	case KindOperator:
		if a.Op == calc.OpPow {
			return mode.CapPower
		}
		return mode.CapBasic
	case KindUnary:
		return mode.CapUnary
	case KindRadix:
		return mode.CapRadix
	case KindAggregate:
		return mode.CapAggregate
	case KindSeparator:
		return mode.CapSeparator
	case KindNone:
		return 0
	default:
		return mode.CapBasic
	}
}

// Label returns the short text shown on the action's button.
func (a Action) Label() string {
	switch a.Kind {
	case KindDigit:
		return string(a.Digit)
	case KindPoint:
		return "."
	case KindSeparator:
		return ","
	case KindOperator:
		return a.Op.String()
	case KindEquals:
		return "="
	case KindBackspace:
		return "⌫"
	case KindClear:
		return "C"
	case KindUnary:
		if a.Func == "sqrt" {
			return calc.OpSqrt.String()
		}
		return a.Func
	case KindRadix:
		return strings.ToUpper(a.Radix.String())
	case KindAggregate:
		return a.Aggregate.String()
	case KindModeChange:
		return a.Mode.String()
	case KindTheme:
		return "theme"
	case KindQuit:
		return "quit"
	default:
		return ""
	}
}

// String returns the textual form, parseable by ParseAction.
func (a Action) String() string {
	name := a.Kind.String()
	switch a.Kind {
	case KindDigit:
		return name + ":" + string(a.Digit)
	case KindOperator:
		return name + ":" + a.Op.String()
	case KindUnary:
		return name + ":" + a.Func
	case KindRadix:
		return name + ":" + a.Radix.String()
	case KindAggregate:
		return name + ":" + a.Aggregate.String()
	case KindModeChange:
		return name + ":" + a.Mode.String()
	case KindTheme:
		return name + ":" + a.Theme
	default:
		return name
	}
}

// ParseAction parses the textual form of an action, e.g. "op:+" or "agg:mean".
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	name, arg, hasArg := strings.Cut(s, ":")
	name = strings.ToLower(name)

	bad := func(format string, args ...any) (Action, error) {
		return Action{}, fmt.Errorf("%w %q: %s", ErrInvalidAction, s, fmt.Sprintf(format, args...))
	}

	needArg := func() bool { return hasArg && arg != "" }

	switch name {
	case "digit":
		if !needArg() || len(arg) != 1 || arg[0] < '0' || arg[0] > '9' {
			return bad("want a single digit")
		}
		return Digit(rune(arg[0])), nil
	case "point", "decimal":
		return Point(), nil
	case "sep", "separator":
		return Separator(), nil
	case "op", "operator":
		if !needArg() {
			return bad("missing operator")
		}
		op, err := calc.ParseOperator(arg)
		if err != nil {
			return bad("%v", err)
		}
		return Operator(op), nil
	case "equals", "eq":
		return Equals(), nil
	case "back", "backspace":
		return Backspace(), nil
	case "clear":
		return Clear(), nil
	case "unary", "fn":
		if !needArg() {
			return bad("missing function name")
		}
		return Unary(arg), nil
	case "radix":
		if !needArg() {
			return bad("missing radix")
		}
		r, err := calc.ParseRadix(arg)
		if err != nil {
			return bad("%v", err)
		}
		return Radix(r), nil
	case "agg", "aggregate":
		if !needArg() {
			return bad("missing aggregate")
		}
		ag, err := calc.ParseAggregate(arg)
		if err != nil {
			return bad("%v", err)
		}
		return Aggregate(ag), nil
	case "mode":
		if !needArg() {
			return bad("missing mode")
		}
		m, err := mode.Parse(arg)
		if err != nil {
			return bad("%v", err)
		}
		return ModeChange(m), nil
	case "theme":
		if !needArg() {
			return Theme("next"), nil
		}
		return Theme(arg), nil
	case "quit", "exit":
		return Quit(), nil
	default:
		return bad("unknown action")
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so keymap overrides can be
// decoded straight from config files.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
