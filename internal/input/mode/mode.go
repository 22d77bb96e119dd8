package mode

import (
	"fmt"
	"strings"
)

// Mode is a calculator operating mode.
type Mode uint8

const (
	// Standard offers digits, the four arithmetic keys, modulo and equals.
	Standard Mode = iota

	// Scientific adds power, square root, natural log and plugin functions.
	Scientific

	// Programmer adds binary and hexadecimal conversion.
	Programmer

	// Statistics adds value lists with mean and variance.
	Statistics
)

// Mode names as used in configuration, keymaps and the CLI.
const (
	NameStandard   = "standard"
	NameScientific = "scientific"
	NameProgrammer = "programmer"
	NameStatistics = "statistics"
)

// All returns every mode in display order.
func All() []Mode {
	return []Mode{Standard, Scientific, Programmer, Statistics}
}

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Standard:
		return NameStandard
	case Scientific:
		return NameScientific
	case Programmer:
		return NameProgrammer
	case Statistics:
		return NameStatistics
	default:
		return "unknown"
	}
}

// DisplayName returns the badge text for the status line.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= Statistics
}

// Parse parses a mode name. Matching is case-insensitive and accepts the
// short forms "std", "sci", "prog" and "stats".
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case NameStandard, "std":
		return Standard, nil
	case NameScientific, "sci":
		return Scientific, nil
	case NameProgrammer, "prog":
		return Programmer, nil
	case NameStatistics, "stats", "stat":
		return Statistics, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read from
// config files and environment variables.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
