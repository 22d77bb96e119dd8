package lua

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/calc"
)

// DefaultExecutionTimeout bounds each script load and each function call.
const DefaultExecutionTimeout = time.Second

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes every use.
type State struct {
	mu sync.Mutex
	L  *lua.LState

	timeout time.Duration
	logger  *slog.Logger

	funcs   map[string]function
	current string // Script being loaded, recorded on registration
	closed  bool
}

type function struct {
	fn   *lua.LFunction
	file string
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for script loads and calls.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used for print and call failures.
func WithLogger(logger *slog.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{
		timeout: DefaultExecutionTimeout,
		logger:  slog.New(slog.DiscardHandler),
		funcs:   make(map[string]function),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "lua")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	installSandbox(s.L, s.logger)
	s.installAPI()
	return s
}

// DoFile runs a script. Errors are returned as *ScriptError naming the file.
func (s *State) DoFile(path string) error {
	return s.run(path, func(L *lua.LState) error { return L.DoFile(path) })
}

// DoString runs code, reporting errors under name.
func (s *State) DoString(name, code string) error {
	return s.run(name, func(L *lua.LState) error { return L.DoString(code) })
}

func (s *State) run(name string, fn func(L *lua.LState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	s.current = name
	defer func() { s.current = "" }()

	if err := s.withTimeout(fn); err != nil {
		return &ScriptError{File: name, Err: err}
	}
	return nil
}

// withTimeout runs fn with a context deadline installed on the state and
// recovers panics from the VM.
func (s *State) withTimeout(fn func(L *lua.LState) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrExecutionTimeout, s.timeout)
		}
	}()
	return fn(s.L)
}

// Call invokes a registered function with x.
func (s *State) Call(name string, x float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStateClosed
	}
	f, ok := s.funcs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	var result lua.LValue
	err := s.withTimeout(func(L *lua.LState) error {
		if err := L.CallByParam(lua.P{Fn: f.fn, NRet: 1, Protect: true}, lua.LNumber(x)); err != nil {
			return err
		}
		result = L.Get(-1)
		L.Pop(1)
		return nil
	})
	if err != nil {
		return 0, &ScriptError{File: f.file, Err: fmt.Errorf("%s(%v): %w", name, x, err)}
	}
	n, ok := result.(lua.LNumber)
	if !ok {
		return 0, &ScriptError{File: f.file, Err: fmt.Errorf("%s: %w (got %s)", name, ErrNotNumber, result.Type())}
	}
	return float64(n), nil
}

// Unary adapts a registered function to calc.UnaryFunc. Failures are logged
// and yield NaN, which the display renders as "NaN".
func (s *State) Unary(name string) calc.UnaryFunc {
	return func(x float64) float64 {
		v, err := s.Call(name, x)
		if err != nil {
			s.logger.Warn("lua function failed", "func", name, "error", err)
			return math.NaN()
		}
		return v
	}
}

// Functions returns the names of registered functions, sorted.
func (s *State) Functions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.funcs))
	for name := range s.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the script that registered name.
func (s *State) Source(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.funcs[name]
	return f.file, ok
}

// Close releases the Lua state.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
