package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wraps an existing screen, such as a simulation screen.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, cell.Combining, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks on the screen's queue. Events the calculator does not use
// (mouse, paste, focus) come back as EventNone.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{}
	}
	return convertEvent(ev)
}

// PostEvent wraps ev in a tcell interrupt so it travels through the same queue
// as real input.
func (t *Terminal) PostEvent(ev Event) error {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(ev)); err != nil {
		return ErrEventQueueFull
	}
	return nil
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}
	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e)
		if k.Key == key.KeyNone {
			return Event{}
		}
		return KeyEvent(k)

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		if posted, ok := e.Data().(Event); ok {
			return posted
		}
		return InterruptEvent(e.Data())

	default:
		return Event{}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyBacktab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey maps a tcell key event to a key.Event.
//
// Control letters arrive either as ASCII control codes or as the KeyCtrlA
// range depending on the terminal; both become rune events with ModCtrl.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods).Normalize()
	}
	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods&^key.ModCtrl)
	}
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
	case k >= tcell.KeySOH && k <= tcell.KeySUB:
		return key.NewRuneEvent('a'+rune(k-tcell.KeySOH), mods|key.ModCtrl)
	}
	return key.Event{}
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
