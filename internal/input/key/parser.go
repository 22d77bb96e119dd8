package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
//
// Supported formats:
//   - Single character: "7", "+", ","
//   - Special keys: "Enter", "Escape", "Backspace", "Space", "F5"
//   - With modifiers: "Ctrl+L", "Alt+Shift+F1", "Ctrl++"
//   - Bracketed: "<C-l>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	// A lone character, including "+" itself
	if utf8.RuneCountInString(spec) == 1 {
		return parseKey(spec, ModNone)
	}

	if strings.Contains(spec, "+") {
		return parseChord(spec)
	}
	return parseKey(spec, ModNone)
}

// MustParse is like Parse but panics on error. Used for built-in keymaps.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key.MustParse(%q): %v", spec, err))
	}
	return ev
}

// parseBracketed parses notation like "C-l", "A-F4", "CR".
func parseBracketed(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->" names the minus key.
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(keyPart, mods)
}

// parseChord parses "Ctrl+S" style notation. A trailing "+" names the plus key.
func parseChord(spec string) (Event, error) {
	keyPart := ""
	body := spec
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		body = strings.TrimSuffix(spec, "++")
	} else {
		i := strings.LastIndex(spec, "+")
		keyPart = spec[i+1:]
		body = spec[:i]
	}
	if keyPart == "" || body == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	var mods Modifier
	for _, p := range strings.Split(body, "+") {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(strings.TrimSpace(keyPart), mods)
}

// parseKey parses a key name or single character with the given modifiers.
func parseKey(name string, mods Modifier) (Event, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == ' ' {
			return NewSpecialEvent(KeySpace, mods), nil
		}
		return NewRuneEvent(r, mods).Normalize(), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}
