// Package keymap provides key binding management for keycalc.
//
// A Keymap is a named collection of bindings for one calculator mode, or for
// all modes when its Mode is empty. The Registry holds every keymap and
// resolves a key event to the binding that wins for the active mode.
//
// # Binding Precedence
//
// When several bindings match a key event, precedence is determined by:
//  1. Keymap priority (user overrides are registered above the defaults)
//  2. Binding priority
//  3. Specificity (mode-specific over global)
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	_ = keymap.LoadDefaults(registry)
//
//	if b, ok := registry.Lookup(mode.Scientific, ev); ok {
//	    dispatcher.Dispatch(b.Act)
//	}
//
// Bindings name their action in the textual form parsed by input.ParseAction,
// e.g. {Keys: "s", Action: "unary:sqrt"}.
package keymap
