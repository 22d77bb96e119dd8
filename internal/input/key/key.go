package key

import "strings"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace

	// KeyRune is used for character keys (digits, operators, letters).
	// The actual character is stored in Event.Rune.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeySpace:     "Space",
	KeyRune:      "Rune",
}

// keyAliases maps lower-case names, including short forms, to keys.
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"cr":     KeyEnter,
	"return": KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"s-tab":  KeyBacktab,
}

func init() {
	for k, name := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		keyAliases[strings.ToLower(name)] = k
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSpecial returns true for any key other than KeyRune and KeyNone.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// KeyFromName returns the key for a case-insensitive name, or KeyNone.
func KeyFromName(name string) Key {
	return keyAliases[strings.ToLower(name)]
}
