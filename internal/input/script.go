package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input/mode"
)

// ParseScript reads a keystroke script into actions.
//
// Digits, '.', ',' and '=' map to their keys; operator symbols (+ - * / % ^
// and × ÷ −) map to operator keys. Words name the remaining keys: sqrt, ln,
// bin, hex, mean, var, back, clear, mod, pow, a mode name, or any
// "kind:arg" action string. Any other word is taken as a unary function name
// so plugin functions can be scripted. Whitespace separates tokens and is
// otherwise ignored.
func ParseScript(script string) ([]Action, error) {
	var actions []Action
	runes := []rune(script)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			actions = append(actions, Digit(r))
		case r == '.':
			actions = append(actions, Point())
		case r == ',':
			actions = append(actions, Separator())
		case r == '=':
			actions = append(actions, Equals())
		case r == '√':
			actions = append(actions, Unary("sqrt"))
		case isWordStart(r):
			j := i
			colon := false
			for j < len(runes) && (isWordRune(runes[j]) || colon && !unicode.IsSpace(runes[j])) {
				if runes[j] == ':' {
					colon = true
				}
				j++
			}
			a, err := parseWord(string(runes[i:j]))
			if err != nil {
				return nil, fmt.Errorf("at offset %d: %w", i, err)
			}
			actions = append(actions, a)
			i = j - 1
		default:
			op, err := calc.ParseOperator(string(r))
			if err != nil {
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidAction, r, i)
			}
			actions = append(actions, Operator(op))
		}
	}

	for i := range actions {
		actions[i].Source = SourceScript
	}
	return actions, nil
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':'
}

func parseWord(word string) (Action, error) {
	if strings.Contains(word, ":") {
		return ParseAction(word)
	}

	lower := strings.ToLower(word)
	switch lower {
	case "sqrt", "root", "ln", "log":
		return Unary(lower), nil
	case "back", "bs":
		return Backspace(), nil
	case "clear", "c", "ac":
		return Clear(), nil
	case "mod":
		return Operator(calc.OpMod), nil
	case "pow":
		return Operator(calc.OpPow), nil
	case "x":
		return Operator(calc.OpMul), nil
	case "quit", "exit":
		return Quit(), nil
	}
	if r, err := calc.ParseRadix(lower); err == nil {
		return Radix(r), nil
	}
	if a, err := calc.ParseAggregate(lower); err == nil {
		return Aggregate(a), nil
	}
	if m, err := mode.Parse(lower); err == nil {
		return ModeChange(m), nil
	}
	return Unary(word), nil
}
