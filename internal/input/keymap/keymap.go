package keymap

import (
	"fmt"

	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/mode"
)

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	// Empty string means global (all modes).
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Priority determines precedence when multiple keymaps match.
	// Higher priority wins. Default is 0.
	Priority int

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "plugin:cube.lua"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(m mode.Mode) *Keymap {
	k.Mode = m.String()
	return k
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that the mode and all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	_, err := k.Parse()
	return err
}

// ParsedKeymap is a keymap with parsed bindings.
type ParsedKeymap struct {
	*Keymap

	// global is true when Mode is empty.
	global bool
	mode   mode.Mode

	ParsedBindings []ParsedBinding
}

// Applies reports whether the keymap is active in m.
func (pk *ParsedKeymap) Applies(m mode.Mode) bool {
	return pk.global || pk.mode == m
}

// Parse parses the mode and every binding in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		global:         k.Mode == "",
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}
	if !parsed.global {
		m, err := mode.Parse(k.Mode)
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", k.Name, err)
		}
		parsed.mode = m
	}

	for i, b := range k.Bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		act, err := input.ParseAction(b.Action)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		act.Source = input.SourceKeyboard
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding: b,
			Event:   ev,
			Act:     act,
			Keymap:  k.Name,
		})
	}

	return parsed, nil
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := *k
	clone.Bindings = make([]Binding, len(k.Bindings))
	copy(clone.Bindings, k.Bindings)
	return &clone
}
