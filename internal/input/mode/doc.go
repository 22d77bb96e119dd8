// Package mode provides the calculator modes and the capability table that
// decides which actions each mode can reach.
//
// The four modes (Standard, Scientific, Programmer, Statistics) do not change
// arithmetic. They only gate which keys the input surface forwards to the
// engine:
//
//	Mode         Basic  Power  Unary  Radix  Aggregate  Separator
//	standard       x
//	scientific     x      x      x
//	programmer     x                    x
//	statistics     x                           x           x
//
// Plugin-defined unary functions are Unary capabilities, so they are reachable
// in Scientific mode only.
//
// The Manager tracks the active mode and notifies callbacks on change:
//
//	m := mode.NewManager(mode.Standard)
//	m.OnChange(func(from, to mode.Mode) { ... })
//	_ = m.SwitchName("scientific")
package mode
