package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color or the terminal's default color.
type Color struct {
	R, G, B uint8

	// Default marks the terminal's own color; R, G and B are ignored.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorRed   = Color{R: 255, G: 0, B: 0}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "#rrggbb" or "#rgb". The leading '#' is optional, and
// "default" yields ColorDefault.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "default") {
		return ColorDefault, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustColor is like ParseColor but panics on error.
// It is intended for built-in palettes.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns "#RRGGBB" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lighten raises the CIE L*a*b* lightness by amount (0..1).
func (c Color) Lighten(amount float64) Color {
	return c.shiftLightness(amount)
}

// Darken lowers the CIE L*a*b* lightness by amount (0..1).
func (c Color) Darken(amount float64) Color {
	return c.shiftLightness(-amount)
}

func (c Color) shiftLightness(delta float64) Color {
	if c.Default {
		return c
	}
	l, a, b := c.colorful().Lab()
	l = math.Max(0, math.Min(1, l+delta))
	return fromColorful(colorful.Lab(l, a, b).Clamped())
}

// Blend mixes c toward other in L*a*b* space; t=0 is c, t=1 is other.
// A default color on either side is returned unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if c.Default || other.Default {
		if t < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), t).Clamped())
}

// Luminance returns the WCAG relative luminance (0 black, 1 white).
func (c Color) Luminance() float64 {
	if c.Default {
		return 0
	}
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between two colors (1..21).
func (c Color) Contrast(other Color) float64 {
	l1, l2 := c.Luminance(), other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Distance returns the CIEDE2000 perceptual distance between two colors.
func (c Color) Distance(other Color) float64 {
	return c.colorful().DistanceCIEDE2000(other.colorful())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}
