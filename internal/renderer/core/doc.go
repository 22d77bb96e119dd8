// Package core provides the shared drawing types for the renderer: colors,
// styles, cells and screen rectangles.
//
// It has no dependency on the terminal library so that both the backend and
// the view can import it without cycles.
package core
