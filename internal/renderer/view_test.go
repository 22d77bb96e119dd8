package renderer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/theme"
)

func defaultKeys(t *testing.T) *keymap.Registry {
	t.Helper()
	r := keymap.NewRegistry()
	if err := keymap.LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	return r
}

func newTestView(t *testing.T, width, height int) (*View, *backend.NullBackend) {
	t.Helper()
	th, err := theme.NewRegistry().Get(theme.NameDark)
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(width, height)
	return New(b, th, defaultKeys(t), DefaultOptions()), b
}

func findButton(rows []ButtonRow, action string) (Button, bool) {
	for _, row := range rows {
		for _, btn := range row.Buttons {
			if btn.Action == action {
				return btn, true
			}
		}
	}
	return Button{}, false
}

func TestKeypadFollowsMode(t *testing.T) {
	keys := defaultKeys(t)

	tests := []struct {
		mode    mode.Mode
		present []string
		absent  []string
	}{
		{mode.Standard, []string{"digit:7", "op:%", "equals", "clear"}, []string{"unary:sqrt", "radix:hex", "agg:mean", "sep"}},
		{mode.Scientific, []string{"unary:sqrt", "unary:ln", "op:^"}, []string{"radix:bin", "agg:var"}},
		{mode.Programmer, []string{"radix:bin", "radix:hex"}, []string{"unary:ln", "sep"}},
		{mode.Statistics, []string{"sep", "agg:mean", "agg:var"}, []string{"op:^", "radix:hex"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			rows, _ := Keypad(keys, tt.mode)
			for _, act := range tt.present {
				if _, ok := findButton(rows, act); !ok {
					t.Errorf("missing button %q", act)
				}
			}
			for _, act := range tt.absent {
				if _, ok := findButton(rows, act); ok {
					t.Errorf("unexpected button %q", act)
				}
			}
		})
	}
}

func TestKeypadMergesKeys(t *testing.T) {
	rows, legend := Keypad(defaultKeys(t), mode.Standard)

	eq, ok := findButton(rows, "equals")
	if !ok {
		t.Fatal("no equals button")
	}
	if !reflect.DeepEqual(eq.Keys, []string{"=", "Enter"}) {
		t.Errorf("equals keys = %v", eq.Keys)
	}
	if eq.Role != theme.RoleOperator {
		t.Errorf("equals role = %v", eq.Role)
	}

	mul, _ := findButton(rows, "op:*")
	if len(mul.Keys) != 2 || mul.Hint() != "" {
		t.Errorf("multiply keys = %v hint %q", mul.Keys, mul.Hint())
	}

	back, _ := findButton(rows, "back")
	if back.Label != "⌫" || back.Hint() != "Backspace" {
		t.Errorf("backspace button = %+v", back)
	}

	var legendActions []string
	for _, b := range legend {
		legendActions = append(legendActions, b.Action)
	}
	if !strings.Contains(strings.Join(legendActions, " "), "mode:scientific") {
		t.Errorf("legend = %v", legendActions)
	}
	for _, row := range rows {
		if row.Category == keymap.CategoryModes || row.Category == keymap.CategoryApp {
			t.Errorf("category %q should be in the legend", row.Category)
		}
	}
}

func TestViewRendersDisplay(t *testing.T) {
	v, b := newTestView(t, 60, 24)
	v.SetDisplay("1234.5")
	v.Render()

	if got := b.Row(1); !strings.HasSuffix(got, "1234.5") {
		t.Errorf("display row = %q", got)
	}
	if v.Display() != "1234.5" {
		t.Errorf("Display() = %q", v.Display())
	}
	if b.ShowCount() != 1 {
		t.Errorf("Show called %d times", b.ShowCount())
	}
}

func TestViewDisplayOverflowKeepsTail(t *testing.T) {
	v, b := newTestView(t, 10, 24)
	v.SetDisplay("12345678901234")
	v.Render()

	if got := strings.TrimSpace(b.Row(1)); got != "…8901234" {
		t.Errorf("display row = %q", got)
	}
}

func TestViewNoticeUntilNextKey(t *testing.T) {
	v, b := newTestView(t, 60, 24)
	v.Notify("Invalid format! Enter numbers like: 10,20,30")
	v.Render()

	if got := b.Row(23); !strings.Contains(got, "Invalid format!") {
		t.Errorf("status row = %q", got)
	}

	v.KeyPressed("digit:1")
	v.Render()
	if got := b.Row(23); strings.Contains(got, "Invalid format!") {
		t.Errorf("notice should clear on the next key: %q", got)
	}
	if v.Notice() != "" {
		t.Errorf("Notice() = %q", v.Notice())
	}
}

func TestViewModeChangesKeypad(t *testing.T) {
	v, b := newTestView(t, 60, 24)
	v.Render()
	if strings.Contains(b.Text(), "√") {
		t.Error("standard mode should not show √")
	}

	v.SetMode(mode.Scientific)
	v.SetPending("+")
	v.Render()
	text := b.Text()
	if !strings.Contains(text, "√") {
		t.Error("scientific mode should show √")
	}
	status := b.Row(23)
	if !strings.Contains(status, "SCIENTIFIC") || !strings.Contains(status, "+") {
		t.Errorf("status row = %q", status)
	}
	if !strings.Contains(b.Row(22), "F2 scientific") {
		t.Errorf("legend row = %q", b.Row(22))
	}
}

func TestViewThemeSwitch(t *testing.T) {
	v, b := newTestView(t, 60, 24)
	light, _ := theme.NewRegistry().Get(theme.NameLight)
	v.SetTheme(light)
	v.Render()

	if v.Theme().Name != theme.NameLight {
		t.Errorf("Theme() = %q", v.Theme().Name)
	}
	if !strings.HasSuffix(b.Row(23), "light") {
		t.Errorf("status row = %q", b.Row(23))
	}
	bg := b.Cell(0, 10).Style.Background
	if !bg.Equals(light.Color(theme.RoleBackground)) && !bg.Equals(light.Color(theme.RoleDigit)) {
		t.Errorf("background = %s", bg)
	}
}

func TestViewResize(t *testing.T) {
	v, b := newTestView(t, 60, 24)
	b.Resize(40, 12)
	v.Resize(40, 12)
	v.SetDisplay("42")
	v.Render()
	if got := b.Row(1); !strings.HasSuffix(got, "42") {
		t.Errorf("display row = %q", got)
	}
	if got := b.Row(11); !strings.Contains(got, "STANDARD") {
		t.Errorf("status row = %q", got)
	}
}
