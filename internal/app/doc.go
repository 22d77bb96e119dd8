// Package app wires the calculator together and runs the terminal event loop.
//
// An Application owns one engine, its dispatcher, the mode manager, the
// keymap and theme registries, the event bus, the history tape and the Lua
// functions. Run drives it from a backend: every key, resize and reload is
// handled on the loop goroutine, one at a time. Background work such as the
// config watcher posts an interrupt event to the backend instead of touching
// state directly.
//
// Eval drives the same wiring without a screen, for the eval command.
package app
