package core

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint text
	AttrUnderline           // Underlined text
	AttrReverse             // Swap fg/bg
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given colors.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with bold added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with dim added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Reverse returns a new style with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Merge overlays other onto s. Default colors in other do not override.
func (s Style) Merge(other Style) Style {
	if !other.Foreground.IsDefault() {
		s.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		s.Background = other.Background
	}
	s.Attributes |= other.Attributes
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}
