package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keycalc/internal/renderer/core"
)

// Palette maps roles to hex colors. It is the declarative form of a theme.
type Palette map[Role]string

// Theme is a complete role to color table.
type Theme struct {
	Name        string
	Description string
	colors      [roleCount]core.Color
}

// New builds a theme from a palette. Every role must be present.
func New(name, description string, p Palette) (*Theme, error) {
	t := &Theme{Name: name, Description: description}
	for _, r := range Roles() {
		hex, ok := p[r]
		if !ok {
			return nil, fmt.Errorf("%w: theme %q has no %s color", ErrIncompletePalette, name, r)
		}
		c, err := core.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("theme %q role %s: %w", name, r, err)
		}
		t.colors[r] = c
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(name, description string, p Palette) *Theme {
	t, err := New(name, description, p)
	if err != nil {
		panic(err)
	}
	return t
}

// Color returns the color for a role.
func (t *Theme) Color(r Role) core.Color {
	if r >= roleCount {
		return core.ColorDefault
	}
	return t.colors[r]
}

// Base returns text on the window background.
func (t *Theme) Base() core.Style {
	return core.NewStyle(t.colors[RoleText], t.colors[RoleBackground])
}

// DisplayStyle returns the display panel style.
func (t *Theme) DisplayStyle() core.Style {
	return core.NewStyle(t.colors[RoleDisplayText], t.colors[RoleDisplay]).Bold()
}

// NoticeStyle returns the style for notice text.
func (t *Theme) NoticeStyle() core.Style {
	return core.NewStyle(t.colors[RoleNotice], t.colors[RoleBackground]).Bold()
}

// BadgeStyle returns the mode badge style: accent background with the most
// readable text color on top.
func (t *Theme) BadgeStyle() core.Style {
	bg := t.colors[RoleAccent]
	return core.NewStyle(t.ReadableOn(bg), bg).Bold()
}

// KeyStyle returns the button style for a key of the given role.
func (t *Theme) KeyStyle(r Role) core.Style {
	bg := t.Color(r)
	return core.NewStyle(t.ReadableOn(bg), bg)
}

// PressedStyle returns the button style right after the key was used.
func (t *Theme) PressedStyle(r Role) core.Style {
	bg := t.Pressed(r)
	return core.NewStyle(t.ReadableOn(bg), bg).Bold()
}

// Pressed returns the role color shifted in lightness toward the opposite
// end of the background, keeping hue and chroma.
func (t *Theme) Pressed(r Role) core.Color {
	delta := 0.15
	if t.IsDark() {
		delta = -delta
	}
	return shiftHCL(t.Color(r), -delta, 1)
}

// Disabled returns the role color desaturated and pulled toward the
// background.
func (t *Theme) Disabled(r Role) core.Color {
	faded := shiftHCL(t.Color(r), 0, 0.3)
	return faded.Blend(t.colors[RoleBackground], 0.5)
}

// IsDark reports whether the background is dark.
func (t *Theme) IsDark() bool {
	return t.colors[RoleBackground].Luminance() < 0.18
}

// ReadableOn returns whichever of the theme's text and background colors has
// the higher contrast against bg.
func (t *Theme) ReadableOn(bg core.Color) core.Color {
	text, back := t.colors[RoleText], t.colors[RoleBackground]
	if text.Contrast(bg) >= back.Contrast(bg) {
		return text
	}
	return back
}

// LowContrast returns the roles whose key text falls under the WCAG AA
// large-text ratio of 3:1.
func (t *Theme) LowContrast() []Role {
	var weak []Role
	for _, r := range []Role{RoleDigit, RoleOperator, RoleFunction, RoleAccent} {
		bg := t.colors[r]
		if t.ReadableOn(bg).Contrast(bg) < 3 {
			weak = append(weak, r)
		}
	}
	if t.colors[RoleDisplayText].Contrast(t.colors[RoleDisplay]) < 3 {
		weak = append(weak, RoleDisplayText)
	}
	return weak
}

func shiftHCL(c core.Color, dl, chromaScale float64) core.Color {
	if c.IsDefault() {
		return c
	}
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, ch, l := cf.Hcl()
	l = math.Max(0, math.Min(1, l+dl))
	r, g, b := colorful.Hcl(h, ch*chromaScale, l).Clamped().RGB255()
	return core.ColorFromRGB(r, g, b)
}
