package theme

import "errors"

var (
	// ErrUnknownTheme indicates no theme is registered under the name.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrUnknownRole indicates a role name that does not exist.
	ErrUnknownRole = errors.New("unknown role")

	// ErrIncompletePalette indicates a palette is missing a role.
	ErrIncompletePalette = errors.New("incomplete palette")

	// ErrDuplicateTheme indicates a theme name is already registered.
	ErrDuplicateTheme = errors.New("theme already registered")
)
