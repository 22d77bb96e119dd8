package lua

import (
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals are removed from the base library.
var unsafeGlobals = []string{
	"dofile",     // Load and execute file
	"loadfile",   // Load file as function
	"load",       // Load string as function
	"loadstring", // Load string as function (deprecated but may exist)
	"require",
	"module",
	"collectgarbage",
}

// openSafeLibraries opens only the base, table, string and math libraries.
// io, os, debug and package are never opened.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// installSandbox strips unsafe globals and routes print to the logger.
func installSandbox(L *lua.LState, logger *slog.Logger) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		logger.Info(strings.Join(parts, "\t"))
		return 0
	}))
}
