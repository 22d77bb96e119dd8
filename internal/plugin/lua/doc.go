// Package lua runs user scripts that add unary functions to the calculator.
//
// Each script runs in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. A script registers functions through the
// keycalc table:
//
//	keycalc.unary("cube", function(x) return x * x * x end)
//
// Registered functions become engine unary operators, reachable from keymaps
// as "unary:cube". Calls run with a timeout so a runaway script cannot hang
// the event loop.
package lua
