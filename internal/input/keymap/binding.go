package keymap

import (
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "7", "+", "Ctrl+L", "<C-l>", "Enter"
	Keys string

	// Action is the action in textual form.
	// Examples: "digit:7", "op:+", "unary:sqrt", "mode:programmer"
	Action string

	// Description provides documentation for the binding.
	Description string

	// Priority determines precedence when multiple bindings match.
	// Higher priority wins. Default is 0.
	Priority int

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with its key and action parsed.
type ParsedBinding struct {
	Binding

	// Event is the parsed key.
	Event key.Event

	// Act is the parsed action.
	Act input.Action

	// Keymap is the name of the keymap that owns the binding.
	Keymap string
}

// Match checks if this binding's key matches ev.
func (pb ParsedBinding) Match(ev key.Event) bool {
	return pb.Event.Matches(ev)
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []ParsedBinding
}

// GroupByCategory groups bindings by their category, keeping first-seen order.
func GroupByCategory(bindings []ParsedBinding) []BindingCategory {
	categoryMap := make(map[string][]ParsedBinding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
