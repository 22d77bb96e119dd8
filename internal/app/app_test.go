package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/tape"
	"github.com/dshills/keycalc/internal/theme"
)

func newHeadless(t *testing.T, cfg *config.Config) (*Application, *tape.MemoryStore) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	store := tape.NewMemoryStore(16)
	a, err := New(cfg, WithStore(store))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a, store
}

func eval(t *testing.T, a *Application, script string) (Result, error) {
	t.Helper()
	actions, err := input.ParseScript(script)
	if err != nil {
		t.Fatalf("ParseScript(%q): %v", script, err)
	}
	return a.Eval(context.Background(), actions)
}

func TestEvalArithmetic(t *testing.T) {
	a, store := newHeadless(t, nil)

	res, err := eval(t, a, "12+7=")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if res.Display != "19" {
		t.Errorf("Display = %q, want 19", res.Display)
	}
	if res.Mode != mode.Standard || res.Pending != "" {
		t.Errorf("Mode = %v, Pending = %q", res.Mode, res.Pending)
	}

	entries, err := store.Latest(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Expr != "12 + 7" || entries[0].Session != a.Recorder().Session() {
		t.Errorf("tape = %+v", entries)
	}
}

func TestEvalPendingOperator(t *testing.T) {
	a, _ := newHeadless(t, nil)
	res, err := eval(t, a, "8*")
	if err != nil {
		t.Fatal(err)
	}
	if res.Pending != "*" {
		t.Errorf("Pending = %q, want *", res.Pending)
	}
}

func TestEvalFormatErrorIsNotice(t *testing.T) {
	a, _ := newHeadless(t, nil)

	res, err := eval(t, a, "programmer 1.5 hex 2")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(res.Notices) != 1 || !strings.Contains(res.Notices[0], "hex") {
		t.Errorf("Notices = %v", res.Notices)
	}
	// The run continued after the notice.
	if res.Display != "1.52" {
		t.Errorf("Display = %q, want 1.52", res.Display)
	}
}

func TestEvalUnreachableActionIgnored(t *testing.T) {
	a, _ := newHeadless(t, nil)
	res, err := eval(t, a, "9 sqrt")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if res.Display != "9" || len(res.Notices) != 0 {
		t.Errorf("Display = %q, Notices = %v", res.Display, res.Notices)
	}
}

func TestEvalUnknownFunction(t *testing.T) {
	a, _ := newHeadless(t, nil)
	_, err := eval(t, a, "scientific 9 tan")
	if !errors.Is(err, calc.ErrUnknownFunction) {
		t.Errorf("Eval() error = %v, want ErrUnknownFunction", err)
	}
}

func TestEvalQuitStops(t *testing.T) {
	a, _ := newHeadless(t, nil)
	res, err := eval(t, a, "4 quit 5")
	if err != nil {
		t.Fatal(err)
	}
	if res.Display != "4" {
		t.Errorf("Display = %q, want 4", res.Display)
	}
}

func TestLuaFunctions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "double.lua")
	if err := os.WriteFile(path, []byte(`keycalc.unary("double", function(x) return x * 2 end)`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Plugins.Scripts = []string{filepath.Join(dir, "*.lua")}

	a, _ := newHeadless(t, cfg)
	res, err := eval(t, a, "scientific 21 double")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if res.Display != "42" || res.Pending != "double" {
		t.Errorf("Display = %q, Pending = %q", res.Display, res.Pending)
	}
}

func TestBrokenScriptIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.lua")
	if err := os.WriteFile(path, []byte("keycalc.unary("), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Plugins.Scripts = []string{path}

	a, _ := newHeadless(t, cfg)
	if len(a.startup) != 1 || !strings.Contains(a.startup[0], "broken.lua") {
		t.Errorf("startup notices = %v", a.startup)
	}
}

func TestNewUnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "neon"
	_, err := New(cfg, WithStore(tape.NewMemoryStore(1)))

	var ce *ComponentError
	if !errors.As(err, &ce) || ce.Component != "theme" {
		t.Fatalf("New() error = %v, want theme ComponentError", err)
	}
	if !errors.Is(err, theme.ErrUnknownTheme) {
		t.Error("errors.Is(err, ErrUnknownTheme) = false")
	}
}

func TestHistoryDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.History.Enabled = false
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if a.Store() != nil || a.Recorder() != nil {
		t.Error("history wired while disabled")
	}
}

func TestSQLiteHistory(t *testing.T) {
	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	actions, _ := input.ParseScript("6*7=")
	if _, err := a.Eval(context.Background(), actions); err != nil {
		t.Fatal(err)
	}
	a.Close()

	store, err := tape.OpenSQLite(cfg.History.Path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = store.Close() }()
	entries, err := store.Latest(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Display != "42" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRunHeadless(t *testing.T) {
	a, _ := newHeadless(t, nil)
	if err := a.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() = %v, want ErrNoBackend", err)
	}
}

func TestComponentError(t *testing.T) {
	base := errors.New("disk full")
	err := NewComponentError("tape", "open", base)
	if err.Error() != "tape: open: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is(err, base) = false")
	}
	if NewComponentError("tape", "", nil).Error() != "tape" {
		t.Error("bare component error")
	}
}
