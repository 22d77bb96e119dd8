// Package key provides key event types and parsing for the input surface.
//
//   - Key: identifies a special key, or KeyRune for character keys
//   - Modifier: Ctrl, Alt, Shift and Meta
//   - Event: a single key press
//
// # Key Specifications
//
// Keymaps name keys with specifications such as:
//
//   - Characters: "7", "+", "*", ",", "^"
//   - Special keys: "Enter", "Escape", "Backspace", "Delete", "F2"
//   - With modifiers: "Ctrl+L", "Alt+2", "Ctrl++"
//   - Bracketed: "<C-l>", "<CR>", "<BS>"
package key
