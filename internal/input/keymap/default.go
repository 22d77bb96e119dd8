package keymap

import (
	"fmt"

	"github.com/dshills/keycalc/internal/input/mode"
)

// Keymap categories, in display order.
const (
	CategoryDigits    = "Digits"
	CategoryOperators = "Operators"
	CategoryEdit      = "Edit"
	CategoryFunctions = "Functions"
	CategoryModes     = "Modes"
	CategoryApp       = "App"
)

// LoadDefaults loads all default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultGlobalKeymap(),
		DefaultScientificKeymap(),
		DefaultProgrammerKeymap(),
		DefaultStatisticsKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// DefaultGlobalKeymap returns the bindings shared by every mode.
func DefaultGlobalKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-global",
		Source: "default",
	}

	for d := '0'; d <= '9'; d++ {
		km.AddBinding(Binding{
			Keys:        string(d),
			Action:      fmt.Sprintf("digit:%c", d),
			Description: fmt.Sprintf("Enter %c", d),
			Category:    CategoryDigits,
		})
	}

	km.Bindings = append(km.Bindings, []Binding{
		{Keys: ".", Action: "point", Description: "Decimal point", Category: CategoryDigits},

		{Keys: "+", Action: "op:+", Description: "Add", Category: CategoryOperators},
		{Keys: "-", Action: "op:-", Description: "Subtract", Category: CategoryOperators},
		{Keys: "*", Action: "op:*", Description: "Multiply", Category: CategoryOperators},
		{Keys: "x", Action: "op:*", Description: "Multiply", Category: CategoryOperators},
		{Keys: "/", Action: "op:/", Description: "Divide", Category: CategoryOperators},
		{Keys: "%", Action: "op:%", Description: "Modulo", Category: CategoryOperators},
		{Keys: "=", Action: "equals", Description: "Evaluate", Category: CategoryOperators},
		{Keys: "Enter", Action: "equals", Description: "Evaluate", Category: CategoryOperators},

		{Keys: "Backspace", Action: "back", Description: "Delete last character", Category: CategoryEdit},
		{Keys: "Escape", Action: "clear", Description: "Clear", Category: CategoryEdit},
		{Keys: "Delete", Action: "clear", Description: "Clear", Category: CategoryEdit},
		{Keys: "c", Action: "clear", Description: "Clear", Category: CategoryEdit},

		{Keys: "F1", Action: "mode:standard", Description: "Standard mode", Category: CategoryModes},
		{Keys: "F2", Action: "mode:scientific", Description: "Scientific mode", Category: CategoryModes},
		{Keys: "F3", Action: "mode:programmer", Description: "Programmer mode", Category: CategoryModes},
		{Keys: "F4", Action: "mode:statistics", Description: "Statistics mode", Category: CategoryModes},

		{Keys: "Ctrl+T", Action: "theme:next", Description: "Next theme", Category: CategoryApp},
		{Keys: "Ctrl+C", Action: "quit", Description: "Quit", Category: CategoryApp},
		{Keys: "q", Action: "quit", Description: "Quit", Category: CategoryApp},
	}...)

	return km
}

// DefaultScientificKeymap returns the scientific-mode function keys.
func DefaultScientificKeymap() *Keymap {
	return &Keymap{
		Name:   "default-scientific",
		Mode:   mode.NameScientific,
		Source: "default",
		Bindings: []Binding{
			{Keys: "^", Action: "op:^", Description: "Power", Category: CategoryOperators},
			{Keys: "p", Action: "op:^", Description: "Power", Category: CategoryOperators},
			{Keys: "s", Action: "unary:sqrt", Description: "Square root", Category: CategoryFunctions},
			{Keys: "r", Action: "unary:sqrt", Description: "Square root", Category: CategoryFunctions},
			{Keys: "l", Action: "unary:ln", Description: "Natural log", Category: CategoryFunctions},
		},
	}
}

// DefaultProgrammerKeymap returns the programmer-mode conversion keys.
func DefaultProgrammerKeymap() *Keymap {
	return &Keymap{
		Name:   "default-programmer",
		Mode:   mode.NameProgrammer,
		Source: "default",
		Bindings: []Binding{
			{Keys: "b", Action: "radix:bin", Description: "To binary", Category: CategoryFunctions},
			{Keys: "h", Action: "radix:hex", Description: "To hexadecimal", Category: CategoryFunctions},
		},
	}
}

// DefaultStatisticsKeymap returns the statistics-mode list keys.
func DefaultStatisticsKeymap() *Keymap {
	return &Keymap{
		Name:   "default-statistics",
		Mode:   mode.NameStatistics,
		Source: "default",
		Bindings: []Binding{
			{Keys: ",", Action: "sep", Description: "List separator", Category: CategoryEdit},
			{Keys: "Space", Action: "sep", Description: "List separator", Category: CategoryEdit},
			{Keys: "m", Action: "agg:mean", Description: "Mean", Category: CategoryFunctions},
			{Keys: "v", Action: "agg:var", Description: "Variance", Category: CategoryFunctions},
		},
	}
}
