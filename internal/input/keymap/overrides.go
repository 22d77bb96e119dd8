package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/keycalc/internal/input/mode"
)

// UserPriority is the keymap priority of user overrides, above the defaults.
const UserPriority = 10

// GlobalSection is the override section that applies to every mode.
const GlobalSection = "global"

// FromOverrides builds user keymaps from config overrides, keyed by section
// ("global" or a mode name) and then by key specification, e.g.
//
//	{"scientific": {"t": "unary:tan"}, "global": {"Ctrl+L": "clear"}}
//
// Every binding is validated; the error names the section and key.
func FromOverrides(overrides map[string]map[string]string) ([]*Keymap, error) {
	sections := make([]string, 0, len(overrides))
	for section := range overrides {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	keymaps := make([]*Keymap, 0, len(sections))
	for _, section := range sections {
		km := NewKeymap("user-" + strings.ToLower(section)).
			WithPriority(UserPriority).
			WithSource("user")

		if !strings.EqualFold(section, GlobalSection) {
			m, err := mode.Parse(section)
			if err != nil {
				return nil, fmt.Errorf("keymap section %q: %w", section, err)
			}
			km.ForMode(m)
		}

		keys := make([]string, 0, len(overrides[section]))
		for k := range overrides[section] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			km.AddBinding(Binding{
				Keys:        k,
				Action:      overrides[section][k],
				Description: "User binding",
				Category:    "User",
			})
		}

		if err := km.Validate(); err != nil {
			return nil, fmt.Errorf("keymap section %q: %w", section, err)
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

// ApplyOverrides registers user keymaps built by FromOverrides, replacing any
// previously registered user keymaps.
func ApplyOverrides(r *Registry, overrides map[string]map[string]string) error {
	keymaps, err := FromOverrides(overrides)
	if err != nil {
		return err
	}
	for _, km := range r.Keymaps() {
		if km.Source == "user" {
			r.Unregister(km.Name)
		}
	}
	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}
