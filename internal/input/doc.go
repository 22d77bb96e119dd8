// Package input turns user input into calculator actions.
//
// An Action is the single event type the input surface hands to the
// dispatcher. Each action names its kind (digit, operator, unary, ...) and the
// capability it needs, so the mode table in package mode decides whether the
// active mode can reach it. The engine itself never sees modes.
//
// # Textual Form
//
// Keymaps, the eval command and plugins write actions as short strings:
//
//	digit:7  point  sep  op:+  equals  back  clear
//	unary:sqrt  radix:hex  agg:mean  mode:scientific  theme:next  quit
//
// ParseAction and Action.String convert between the two forms.
//
// # Scripts
//
// ParseScript reads a free-form keystroke script such as "12 + 7 =" or
// "10,20,30 mean" into a sequence of actions.
//
// Key handling lives in the subpackages:
//
//   - key: key events and key specification parsing
//   - keymap: per-mode bindings from keys to actions
//   - mode: the calculator modes and their capability table
package input
