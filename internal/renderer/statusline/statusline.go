// Package statusline provides the one-row status bar under the keypad.
package statusline

import (
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
	"github.com/dshills/keycalc/internal/theme"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the mode badge, pending operator, message and theme name.
type StatusLine struct {
	mode    string // Mode display name (e.g., "SCIENTIFIC")
	theme   string
	pending string // Pending operator symbol, empty when none

	message     string
	messageType MessageType

	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{mode: "STANDARD"}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetTheme updates the displayed theme name.
func (s *StatusLine) SetTheme(name string) {
	s.theme = name
}

// SetPending updates the pending operator indicator.
func (s *StatusLine) SetPending(op string) {
	s.pending = op
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message text.
func (s *StatusLine) Message() string {
	return s.message
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line at row using the theme's colors.
func (s *StatusLine) Render(b backend.Backend, row int, th *theme.Theme) {
	if s.width <= 0 {
		return
	}
	bar := th.Base().WithBackground(th.Color(theme.RoleDisplay))
	b.Fill(core.RectFromSize(row, 0, 1, s.width), core.BlankCell(bar))

	right := " " + s.theme + " "
	limit := s.width - core.StringWidth(right)
	if s.theme == "" || limit < 0 {
		right, limit = "", s.width
	}

	col := backend.DrawString(b, 0, row, limit, " "+s.mode+" ", th.BadgeStyle())
	col = backend.DrawString(b, col, row, limit, " ", bar)

	if s.message != "" {
		style := bar
		if s.messageType == MessageError {
			style = th.NoticeStyle().WithBackground(th.Color(theme.RoleDisplay))
		}
		backend.DrawString(b, col, row, limit, core.Truncate(s.message, limit-col, "…"), style)
	} else if s.pending != "" {
		backend.DrawString(b, col, row, limit, s.pending, bar.Bold())
	}

	if right != "" {
		backend.DrawString(b, limit, row, s.width, right, bar.Dim())
	}
}
