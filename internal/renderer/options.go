package renderer

// Options configures the view layout.
type Options struct {
	// DisplayHeight is the number of rows of the display panel.
	DisplayHeight int

	// ButtonWidth is the minimum width of a keypad button.
	ButtonWidth int

	// ShowHints draws the bound key under each button label.
	ShowHints bool

	// ShowLegend draws the mode and app keys above the status line.
	ShowLegend bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		DisplayHeight: 3,
		ButtonWidth:   6,
		ShowHints:     true,
		ShowLegend:    true,
	}
}
