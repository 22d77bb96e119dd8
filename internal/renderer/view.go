package renderer

import (
	"sync"

	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
	"github.com/dshills/keycalc/internal/renderer/statusline"
	"github.com/dshills/keycalc/internal/theme"
)

// View paints the calculator and receives the engine's display and notices.
// It implements calc.DisplaySink and calc.Notifier.
type View struct {
	mu sync.Mutex

	backend backend.Backend
	opts    Options
	keys    KeySource
	theme   *theme.Theme
	status  *statusline.StatusLine

	mode    mode.Mode
	display string
	pressed string // Action string of the last dispatched key

	width, height int
}

// New creates a view drawing to b.
func New(b backend.Backend, th *theme.Theme, keys KeySource, opts Options) *View {
	if opts.DisplayHeight < 1 {
		opts.DisplayHeight = 1
	}
	if opts.ButtonWidth < 3 {
		opts.ButtonWidth = 3
	}
	v := &View{
		backend: b,
		opts:    opts,
		keys:    keys,
		theme:   th,
		status:  statusline.New(),
		display: "0",
	}
	v.width, v.height = b.Size()
	v.status.Resize(v.width)
	v.status.SetTheme(th.Name)
	v.status.SetMode(mode.Standard.DisplayName())
	return v
}

// SetDisplay records the display text. It satisfies calc.DisplaySink.
func (v *View) SetDisplay(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.display = text
}

// Notify shows a notice until the next key. It satisfies calc.Notifier.
func (v *View) Notify(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status.SetMessage(message, statusline.MessageError)
}

// Display returns the text currently shown in the display panel.
func (v *View) Display() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.display
}

// Notice returns the notice currently shown, if any.
func (v *View) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status.Message()
}

// KeyPressed clears the notice and records the action being dispatched so
// its button is highlighted.
func (v *View) KeyPressed(action string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status.ClearMessage()
	v.pressed = action
}

// Pressed returns the action string of the highlighted button.
func (v *View) Pressed() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pressed
}

// SetMode changes the mode shown in the status line and the keypad.
func (v *View) SetMode(m mode.Mode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = m
	v.status.SetMode(m.DisplayName())
}

// SetPending shows the pending operator symbol.
func (v *View) SetPending(op string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status.SetPending(op)
}

// SetTheme switches the color table.
func (v *View) SetTheme(th *theme.Theme) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.theme = th
	v.status.SetTheme(th.Name)
}

// Theme returns the active theme.
func (v *View) Theme() *theme.Theme {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.theme
}

// Resize updates the view dimensions.
func (v *View) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = width, height
	v.status.Resize(width)
}

// Render paints the whole screen and flushes it.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()

	b := v.backend
	if v.width <= 0 || v.height <= 0 {
		return
	}
	screen := core.RectFromSize(0, 0, v.height, v.width)
	b.Fill(screen, core.BlankCell(v.theme.Base()))

	body, statusRow := screen.SplitBottom(1)
	panel, body := body.SplitTop(v.opts.DisplayHeight)
	v.renderDisplay(panel)

	rows, legend := Keypad(v.keys, v.mode)
	if v.opts.ShowLegend && len(legend) > 0 {
		var legendRow core.ScreenRect
		body, legendRow = body.SplitBottom(1)
		v.renderLegend(legendRow, legend)
	}
	v.renderKeypad(body.Inset(1, 1, 0, 1), rows)

	v.status.Render(b, statusRow.Top, v.theme)
	b.Show()
}

// renderDisplay draws the display text right aligned on the panel's middle
// row. Text wider than the panel keeps its tail, prefixed with "…".
func (v *View) renderDisplay(panel core.ScreenRect) {
	if panel.IsEmpty() {
		return
	}
	style := v.theme.DisplayStyle()
	v.backend.Fill(panel, core.BlankCell(style))

	avail := panel.Width() - 2
	if avail <= 0 {
		return
	}
	text := v.display
	if core.StringWidth(text) > avail {
		text = "…" + tail(text, avail-1)
	}
	row := panel.Top + panel.Height()/2
	x := panel.Right - 1 - core.StringWidth(text)
	backend.DrawString(v.backend, x, row, panel.Right-1, text, style)
}

// renderKeypad flows each category's buttons left to right, wrapping at the
// area's right edge. Each button takes one row for its label and, with hints
// on, one row for its key.
func (v *View) renderKeypad(area core.ScreenRect, rows []ButtonRow) {
	rowHeight := 1
	if v.opts.ShowHints {
		rowHeight = 2
	}
	y := area.Top
	for _, row := range rows {
		x := area.Left
		for _, btn := range row.Buttons {
			w := v.buttonWidth(btn)
			if x > area.Left && x+w > area.Right {
				x = area.Left
				y += rowHeight + 1
			}
			if y+rowHeight > area.Bottom {
				return
			}
			v.renderButton(x, y, w, btn)
			x += w + 1
		}
		y += rowHeight + 1
	}
}

func (v *View) buttonWidth(btn Button) int {
	w := max(core.StringWidth(btn.Label), core.StringWidth(btn.Hint())) + 2
	return max(w, v.opts.ButtonWidth)
}

func (v *View) renderButton(x, y, w int, btn Button) {
	style := v.theme.KeyStyle(btn.Role)
	if btn.Action == v.pressed {
		style = v.theme.PressedStyle(btn.Role)
	}
	rows := 1
	if v.opts.ShowHints {
		rows = 2
	}
	v.backend.Fill(core.RectFromSize(y, x, rows, w), core.BlankCell(style))
	drawCentered(v.backend, x, y, w, btn.Label, style.Bold())
	if v.opts.ShowHints {
		if hint := btn.Hint(); hint != "" {
			drawCentered(v.backend, x, y+1, w, hint, style.Dim())
		}
	}
}

func (v *View) renderLegend(row core.ScreenRect, legend []Button) {
	style := v.theme.Base().Dim()
	x := row.Left + 1
	for _, btn := range legend {
		entry := btn.Keys[0] + " " + btn.Label
		if x+core.StringWidth(entry) > row.Right {
			return
		}
		x = backend.DrawString(v.backend, x, row.Top, row.Right, entry, style)
		x += 2
	}
}

func drawCentered(b backend.Backend, x, y, w int, s string, style core.Style) {
	s = core.Truncate(s, w, "")
	pad := (w - core.StringWidth(s)) / 2
	backend.DrawString(b, x+pad, y, x+w, s, style)
}

// tail returns the last cells of s that fit in width columns.
func tail(s string, width int) string {
	runes := []rune(s)
	used := 0
	i := len(runes)
	for i > 0 {
		w := core.RuneWidth(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(runes[i:])
}
