package keymap

import (
	"strings"
	"testing"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/mode"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults error = %v", err)
	}
	return r
}

// ============================================================================
// Keymap
// ============================================================================

func TestKeymapBuilders(t *testing.T) {
	km := NewKeymap("test").
		ForMode(mode.Programmer).
		WithPriority(10).
		WithSource("test-source").
		Add("b", "radix:bin").
		Add("h", "radix:hex")

	if km.Mode != "programmer" {
		t.Errorf("Mode = %q, want %q", km.Mode, "programmer")
	}
	if km.Priority != 10 {
		t.Errorf("Priority = %d, want %d", km.Priority, 10)
	}
	if km.Source != "test-source" {
		t.Errorf("Source = %q, want %q", km.Source, "test-source")
	}
	if len(km.Bindings) != 2 {
		t.Errorf("len(Bindings) = %d, want %d", len(km.Bindings), 2)
	}
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		keymap  *Keymap
		wantErr string
	}{
		{"valid", NewKeymap("ok").Add("7", "digit:7"), ""},
		{"empty keys", NewKeymap("k").Add("", "clear"), "empty keys"},
		{"empty action", NewKeymap("a").Add("c", ""), "empty action"},
		{"bad key", NewKeymap("b").Add("Hyper+x", "clear"), "invalid key"},
		{"bad action", NewKeymap("c").Add("x", "explode"), "invalid action"},
		{"bad mode", &Keymap{Name: "m", Mode: "turbo"}, "unknown mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keymap.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestKeymapClone(t *testing.T) {
	km := NewKeymap("orig").Add("1", "digit:1")
	clone := km.Clone()
	clone.Bindings[0].Action = "digit:2"
	if km.Bindings[0].Action != "digit:1" {
		t.Error("Clone shares bindings with original")
	}
}

// ============================================================================
// Registry lookup
// ============================================================================

func TestLookupGlobal(t *testing.T) {
	r := defaultRegistry(t)

	for _, m := range mode.All() {
		b, ok := r.Lookup(m, key.NewRuneEvent('7', key.ModNone))
		if !ok {
			t.Fatalf("7 not bound in %s", m)
		}
		if b.Act != input.Digit('7') {
			t.Errorf("7 in %s = %s", m, b.Act)
		}
	}

	b, ok := r.Lookup(mode.Standard, key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if !ok || b.Act.Kind != input.KindEquals {
		t.Errorf("Enter = %v, %v", b.Act, ok)
	}

	b, ok = r.Lookup(mode.Standard, key.NewRuneEvent('+', key.ModShift))
	if !ok || b.Act != input.Operator(calc.OpAdd) {
		t.Errorf("Shift+'+' = %v, %v", b.Act, ok)
	}
}

func TestLookupModeSpecific(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		mode mode.Mode
		r    rune
		want string
		ok   bool
	}{
		{mode.Scientific, 's', "unary:sqrt", true},
		{mode.Standard, 's', "", false},
		{mode.Scientific, '^', "op:^", true},
		{mode.Programmer, 'h', "radix:hex", true},
		{mode.Scientific, 'h', "", false},
		{mode.Statistics, ',', "sep", true},
		{mode.Statistics, 'm', "agg:mean", true},
		{mode.Programmer, 'm', "", false},
	}
	for _, tt := range tests {
		b, ok := r.Lookup(tt.mode, key.NewRuneEvent(tt.r, key.ModNone))
		if ok != tt.ok {
			t.Errorf("%q in %s: ok = %v, want %v", tt.r, tt.mode, ok, tt.ok)
			continue
		}
		if ok && b.Action != tt.want {
			t.Errorf("%q in %s = %q, want %q", tt.r, tt.mode, b.Action, tt.want)
		}
	}
}

func TestLookupCtrlChord(t *testing.T) {
	r := defaultRegistry(t)
	b, ok := r.Lookup(mode.Standard, key.NewRuneEvent('c', key.ModCtrl))
	if !ok || b.Act.Kind != input.KindQuit {
		t.Errorf("Ctrl+c = %v, %v", b.Act, ok)
	}
}

func TestLookupPrecedence(t *testing.T) {
	r := defaultRegistry(t)

	// Mode-specific beats global at equal keymap priority.
	_ = r.Register(NewKeymap("sci-c").ForMode(mode.Scientific).Add("c", "unary:cube"))
	b, _ := r.Lookup(mode.Scientific, key.NewRuneEvent('c', key.ModNone))
	if b.Action != "unary:cube" {
		t.Errorf("expected unary:cube, got %q", b.Action)
	}
	b, _ = r.Lookup(mode.Standard, key.NewRuneEvent('c', key.ModNone))
	if b.Action != "clear" {
		t.Errorf("expected clear in standard, got %q", b.Action)
	}

	// Keymap priority beats specificity.
	_ = r.Register(NewKeymap("user").WithPriority(UserPriority).Add("c", "back"))
	b, _ = r.Lookup(mode.Scientific, key.NewRuneEvent('c', key.ModNone))
	if b.Action != "back" {
		t.Errorf("expected back, got %q", b.Action)
	}
	if b.Keymap != "user" {
		t.Errorf("expected keymap user, got %q", b.Keymap)
	}
}

func TestRegisterReplaceAndUnregister(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewKeymap("a").Add("1", "digit:1"))
	_ = r.Register(NewKeymap("a").Add("1", "digit:2"))

	if len(r.Keymaps()) != 1 {
		t.Fatalf("expected 1 keymap, got %d", len(r.Keymaps()))
	}
	b, _ := r.Lookup(mode.Standard, key.NewRuneEvent('1', key.ModNone))
	if b.Action != "digit:2" {
		t.Errorf("expected replaced binding, got %q", b.Action)
	}

	r.Unregister("a")
	if _, ok := r.Lookup(mode.Standard, key.NewRuneEvent('1', key.ModNone)); ok {
		t.Error("lookup should fail after Unregister")
	}
	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
}

func TestBindingsForMode(t *testing.T) {
	r := defaultRegistry(t)

	std := r.Bindings(mode.Standard)
	sci := r.Bindings(mode.Scientific)
	if len(sci) <= len(std) {
		t.Errorf("scientific should have more bindings (%d) than standard (%d)", len(sci), len(std))
	}
	for _, b := range std {
		if b.Act.Kind == input.KindUnary {
			t.Errorf("standard lists unary binding %q", b.Keys)
		}
	}

	seen := make(map[string]bool)
	for _, b := range sci {
		k := b.Event.String()
		if seen[k] {
			t.Errorf("key %q listed twice", k)
		}
		seen[k] = true
	}

	groups := GroupByCategory(std)
	if len(groups) == 0 || groups[0].Name != CategoryDigits {
		t.Errorf("expected digits first, got %+v", groups)
	}
}

// ============================================================================
// Overrides
// ============================================================================

func TestFromOverrides(t *testing.T) {
	keymaps, err := FromOverrides(map[string]map[string]string{
		"global":     {"Ctrl+L": "clear"},
		"scientific": {"t": "unary:tan"},
	})
	if err != nil {
		t.Fatalf("FromOverrides error = %v", err)
	}
	if len(keymaps) != 2 {
		t.Fatalf("expected 2 keymaps, got %d", len(keymaps))
	}
	if keymaps[0].Mode != "" || keymaps[1].Mode != "scientific" {
		t.Errorf("unexpected modes %q, %q", keymaps[0].Mode, keymaps[1].Mode)
	}
	if keymaps[1].Priority != UserPriority || keymaps[1].Source != "user" {
		t.Errorf("unexpected keymap %+v", keymaps[1])
	}
}

func TestFromOverridesErrors(t *testing.T) {
	tests := []map[string]map[string]string{
		{"turbo": {"a": "clear"}},
		{"global": {"a": "warp:9"}},
		{"global": {"Super+Banana": "clear"}},
	}
	for _, o := range tests {
		if _, err := FromOverrides(o); err == nil {
			t.Errorf("FromOverrides(%v) should fail", o)
		}
	}
}

func TestApplyOverridesReplacesUserKeymaps(t *testing.T) {
	r := defaultRegistry(t)

	if err := ApplyOverrides(r, map[string]map[string]string{"global": {"z": "clear"}}); err != nil {
		t.Fatalf("ApplyOverrides error = %v", err)
	}
	if _, ok := r.Lookup(mode.Standard, key.NewRuneEvent('z', key.ModNone)); !ok {
		t.Fatal("z should be bound")
	}

	if err := ApplyOverrides(r, map[string]map[string]string{"global": {"y": "clear"}}); err != nil {
		t.Fatalf("ApplyOverrides error = %v", err)
	}
	if _, ok := r.Lookup(mode.Standard, key.NewRuneEvent('z', key.ModNone)); ok {
		t.Error("z binding should be gone after reapplying overrides")
	}
	if _, ok := r.Lookup(mode.Standard, key.NewRuneEvent('y', key.ModNone)); !ok {
		t.Error("y should be bound")
	}
}
