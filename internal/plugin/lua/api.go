package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/calc"
)

// Version is exposed to scripts as keycalc.version.
var Version = "dev"

// installAPI creates the global keycalc table.
func (s *State) installAPI() {
	L := s.L
	mod := L.NewTable()
	L.SetField(mod, "version", lua.LString(Version))
	L.SetField(mod, "unary", L.NewFunction(s.luaUnary))
	L.SetField(mod, "render", L.NewFunction(luaRender))
	L.SetGlobal("keycalc", mod)
}

// luaUnary implements keycalc.unary(name, fn). It runs while s.mu is held by
// run, so it touches s.funcs directly.
func (s *State) luaUnary(L *lua.LState) int {
	name := strings.TrimSpace(L.CheckString(1))
	fn := L.CheckFunction(2)
	if name == "" {
		L.ArgError(1, "function name must not be empty")
		return 0
	}
	if strings.ContainsAny(name, " \t:") {
		L.ArgError(1, "function name must not contain spaces or ':'")
		return 0
	}
	if prev, ok := s.funcs[name]; ok && prev.file != s.current {
		s.logger.Warn("lua function replaced", "func", name, "previous", prev.file, "file", s.current)
	}
	s.funcs[name] = function{fn: fn, file: s.current}
	return 0
}

// luaRender implements keycalc.render(x): the calculator's display text for x.
func luaRender(L *lua.LState) int {
	x := L.CheckNumber(1)
	L.Push(lua.LString(calc.Render(float64(x))))
	return 1
}
