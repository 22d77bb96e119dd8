package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/logging"
)

// Validate checks every setting and returns the joined FieldErrors.
// knownTheme may be nil to skip the theme check.
func (c *Config) Validate(knownTheme func(string) bool) error {
	var errs []error
	fail := func(key string, value any, err error) {
		errs = append(errs, &FieldError{Key: key, Value: value, Err: err})
	}

	if _, err := mode.Parse(c.UI.Mode); err != nil {
		fail("ui.mode", c.UI.Mode, err)
	}
	if knownTheme != nil && !knownTheme(c.UI.Theme) {
		fail("ui.theme", c.UI.Theme, fmt.Errorf("%w: unknown theme", ErrInvalidValue))
	}

	if c.History.Limit < 0 {
		fail("history.limit", c.History.Limit, fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}

	if d, err := time.ParseDuration(c.Plugins.Timeout); err != nil {
		fail("plugins.timeout", c.Plugins.Timeout, fmt.Errorf("%w: not a duration", ErrInvalidValue))
	} else if d <= 0 {
		fail("plugins.timeout", c.Plugins.Timeout, fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	if _, ok := logging.LookupLevel(c.Logging.Level); !ok {
		fail("logging.level", c.Logging.Level, fmt.Errorf("%w: want debug, info, warn or error", ErrInvalidValue))
	}

	sections := make([]string, 0, len(c.Keymap))
	for section := range c.Keymap {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		one := map[string]map[string]string{section: c.Keymap[section]}
		if _, err := keymap.FromOverrides(one); err != nil {
			fail("keymap."+section, c.Keymap[section], err)
		}
	}

	return errors.Join(errs...)
}
