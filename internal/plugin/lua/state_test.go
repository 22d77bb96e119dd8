package lua

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keycalc/internal/calc"
)

func writeScript(t *testing.T, dir, name, code string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegisterAndCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.DoString("cube.lua", `keycalc.unary("cube", function(x) return x * x * x end)`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
	got, err := s.Call("cube", 3)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 27 {
		t.Errorf("cube(3) = %v, want 27", got)
	}
	if file, _ := s.Source("cube"); file != "cube.lua" {
		t.Errorf("Source = %q", file)
	}
	if names := s.Functions(); len(names) != 1 || names[0] != "cube" {
		t.Errorf("Functions = %v", names)
	}
}

func TestSandboxHidesUnsafeLibraries(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, global := range []string{"os", "io", "debug", "package", "dofile", "loadfile", "load", "require"} {
		code := "assert(" + global + " == nil, '" + global + " should be nil')"
		if err := s.DoString("probe", code); err != nil {
			t.Errorf("%s: %v", global, err)
		}
	}
	for _, global := range []string{"math.sqrt", "string.format", "table.insert", "pairs"} {
		code := "assert(" + global + " ~= nil, '" + global + " should exist')"
		if err := s.DoString("probe", code); err != nil {
			t.Errorf("%s: %v", global, err)
		}
	}
}

func TestRenderHelper(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.DoString("render.lua", `assert(keycalc.render(8) == "8"); assert(keycalc.render(2.5) == "2.5")`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestScriptErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "broken.lua", "keycalc.unary(")

	s := NewState()
	defer s.Close()

	err := s.DoFile(path)
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScriptError, got %v", err)
	}
	if se.File != path || !strings.Contains(err.Error(), "broken.lua") {
		t.Errorf("error = %v", err)
	}
}

func TestBadRegistrationArguments(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, code := range []string{
		`keycalc.unary("", function(x) return x end)`,
		`keycalc.unary("a b", function(x) return x end)`,
		`keycalc.unary("half", 2)`,
	} {
		if err := s.DoString("bad.lua", code); err == nil {
			t.Errorf("%s: expected an error", code)
		}
	}
	if len(s.Functions()) != 0 {
		t.Errorf("Functions = %v", s.Functions())
	}
}

func TestCallFailures(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString("f.lua", `
		keycalc.unary("word", function(x) return "seven" end)
		keycalc.unary("boom", function(x) error("kaboom") end)
		keycalc.unary("spin", function(x) while true do end end)
	`)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Call("word", 1); !errors.Is(err, ErrNotNumber) {
		t.Errorf("word: %v, want ErrNotNumber", err)
	}
	if _, err := s.Call("boom", 1); err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("boom: %v", err)
	}
	if _, err := s.Call("spin", 1); !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("spin: %v, want ErrExecutionTimeout", err)
	}
	if _, err := s.Call("missing", 1); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("missing: %v, want ErrUnknownFunction", err)
	}
	if v := s.Unary("boom")(1); !math.IsNaN(v) {
		t.Errorf("Unary on failure = %v, want NaN", v)
	}

	// The state is still usable after a timeout.
	if err := s.DoString("ok.lua", `keycalc.unary("id", function(x) return x end)`); err != nil {
		t.Fatal(err)
	}
	if v, err := s.Call("id", 4); err != nil || v != 4 {
		t.Errorf("id(4) = %v, %v", v, err)
	}
}

func TestLoadRegistersIntoEngine(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.lua", `keycalc.unary("double", function(x) return 2 * x end)`)
	writeScript(t, dir, "b.lua", `keycalc.unary("sqrt", function(x) return -1 end)`)
	writeScript(t, dir, "c.lua", `this is not lua`)

	s := NewState()
	defer s.Close()
	engine := calc.New()

	err := s.Load(engine, filepath.Join(dir, "*.lua"), filepath.Join(dir, "missing.lua"))
	if err == nil {
		t.Fatal("expected joined errors")
	}
	msg := err.Error()
	for _, want := range []string{"b.lua", "c.lua", "missing.lua"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %s", msg, want)
		}
	}

	if !engine.HasFunc("double") {
		t.Fatal("double should be registered despite other failures")
	}
	for _, d := range "21" {
		if err := engine.Digit(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := engine.Unary("double"); err != nil {
		t.Fatal(err)
	}
	if engine.Display() != "42" {
		t.Errorf("double(21) display = %q", engine.Display())
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	s.Close()
	s.Close()
	if err := s.DoString("x", "return"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close = %v", err)
	}
	if _, err := s.Call("x", 1); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call after Close = %v", err)
	}
}
