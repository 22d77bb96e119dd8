package mode

import "strings"

// Capability is a set of action groups a mode makes reachable.
type Capability uint8

const (
	// CapBasic covers digits, point, + - * /, modulo, equals, backspace, clear
	// and mode changes.
	CapBasic Capability = 1 << iota

	// CapPower is the binary power key.
	CapPower

	// CapUnary covers square root, natural log and plugin functions.
	CapUnary

	// CapRadix covers binary and hexadecimal conversion.
	CapRadix

	// CapAggregate covers mean and variance.
	CapAggregate

	// CapSeparator is the list separator key.
	CapSeparator
)

var capNames = []struct {
	c    Capability
	name string
}{
	{CapBasic, "basic"},
	{CapPower, "power"},
	{CapUnary, "unary"},
	{CapRadix, "radix"},
	{CapAggregate, "aggregate"},
	{CapSeparator, "separator"},
}

// String returns the capability names joined with "|".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, cn := range capNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

// capabilities is the mode table.
var capabilities = map[Mode]Capability{
	Standard:   CapBasic,
	Scientific: CapBasic | CapPower | CapUnary,
	Programmer: CapBasic | CapRadix,
	Statistics: CapBasic | CapAggregate | CapSeparator,
}

// Capabilities returns the capability set of m.
func (m Mode) Capabilities() Capability {
	return capabilities[m]
}

// Allows reports whether every capability in c is reachable in m.
func (m Mode) Allows(c Capability) bool {
	return c != 0 && m.Capabilities()&c == c
}

// Allows reports whether mode m can reach an action needing capability c.
func Allows(m Mode, c Capability) bool {
	return m.Allows(c)
}
