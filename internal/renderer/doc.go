// Package renderer draws the calculator in a terminal.
//
// The View is the engine's display and notification sink. It keeps the last
// display text and notice, and paints the whole screen on Render:
//
//	┌──────────────────────────────┐
//	│                        1234.5│  display panel
//	├──────────────────────────────┤
//	│ 7  8  9  4 ...               │  keypad rows, one per category
//	│ +  -  *  /  %  =             │
//	├──────────────────────────────┤
//	│ F1 standard  F2 scientific   │  legend (modes, app keys)
//	│ SCIENTIFIC  +          dark  │  status line
//	└──────────────────────────────┘
//
// The keypad lists only the bindings reachable in the current mode, so it
// changes as the mode changes. Drawing goes through backend.Backend; tests
// use backend.NullBackend and read the screen back as text.
package renderer
