package key

import "strings"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Normalize returns the event in the form keymaps are indexed by.
// Shift is dropped from character events because it is already part of the
// character ('+' arrives as Shift+'+' on most layouts).
func (e Event) Normalize() Event {
	if e.Key == KeyRune {
		e.Modifiers &^= ModShift
		if e.Rune == ' ' {
			return Event{Key: KeySpace, Modifiers: e.Modifiers}
		}
	}
	return e
}

// String returns the canonical specification, parseable by Parse.
// Examples: "7", "+", "Ctrl+l", "Enter", "Alt+Backspace".
func (e Event) String() string {
	e = e.Normalize()
	var name string
	if e.Key == KeyRune {
		name = string(e.Rune)
	} else {
		name = e.Key.String()
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Matches reports whether two events denote the same key press.
func (e Event) Matches(other Event) bool {
	a, b := e.Normalize(), other.Normalize()
	if a.Key != b.Key || a.Modifiers != b.Modifiers {
		return false
	}
	if a.Key != KeyRune {
		return true
	}
	if a.Modifiers != ModNone {
		// Ctrl+L and Ctrl+l are the same chord.
		return strings.EqualFold(string(a.Rune), string(b.Rune))
	}
	return a.Rune == b.Rune
}
