package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Radix selects the base for a programmer-mode conversion.
type Radix uint8

const (
	RadixBin Radix = iota
	RadixHex
)

// String returns the key label of the radix.
func (r Radix) String() string {
	switch r {
	case RadixBin:
		return "bin"
	case RadixHex:
		return "hex"
	default:
		return fmt.Sprintf("Radix(%d)", r)
	}
}

// ParseRadix parses "bin" or "hex" (case-insensitive).
func ParseRadix(s string) (Radix, error) {
	switch strings.ToLower(s) {
	case "bin", "binary":
		return RadixBin, nil
	case "hex", "hexadecimal":
		return RadixHex, nil
	default:
		return 0, fmt.Errorf("unknown radix %q", s)
	}
}

// FormatRadix formats a 32-bit signed integer in base r. Negative values are
// shown as their 32-bit two's complement.
func FormatRadix(v int32, r Radix) string {
	u := uint64(uint32(v))
	if r == RadixHex {
		return strings.ToUpper(strconv.FormatUint(u, 16))
	}
	return strconv.FormatUint(u, 2)
}

// Convert replaces the display with the binary or hexadecimal form of the
// integer it holds. The display must be a signed 32-bit decimal integer;
// otherwise a *FormatError is reported and the state is unchanged.
func (e *Engine) Convert(r Radix) error {
	text := e.buffer
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		msg := msgBinary
		if r == RadixHex {
			msg = msgHex
		}
		return e.fail(&FormatError{Op: r.String(), Input: text, Message: msg, Err: err})
	}

	e.setBuffer(FormatRadix(int32(v), r))
	e.entering = false
	e.appending = false
	e.observe(fmt.Sprintf("%s(%d)", r, v), float64(v))
	return nil
}
