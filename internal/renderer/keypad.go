package renderer

import (
	"strings"

	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/theme"
)

// KeySource lists the bindings in effect for a mode.
type KeySource interface {
	Bindings(m mode.Mode) []keymap.ParsedBinding
}

// Button is one keypad button: an action and the keys bound to it.
type Button struct {
	Label  string
	Action string
	Keys   []string
	Role   theme.Role
}

// Hint returns the first bound key, or "" when it equals the label.
func (b Button) Hint() string {
	if len(b.Keys) == 0 || strings.EqualFold(b.Keys[0], b.Label) {
		return ""
	}
	return b.Keys[0]
}

// ButtonRow is a category of buttons.
type ButtonRow struct {
	Category string
	Buttons  []Button
}

// legendCategories are drawn as text rather than buttons.
var legendCategories = map[string]bool{
	keymap.CategoryModes: true,
	keymap.CategoryApp:   true,
}

// Keypad groups the bindings reachable in m into button rows and legend
// entries. Bindings whose action the mode does not allow are left out, and
// several keys bound to one action share a button.
func Keypad(keys KeySource, m mode.Mode) (rows []ButtonRow, legend []Button) {
	if keys == nil {
		return nil, nil
	}
	var reachable []keymap.ParsedBinding
	for _, pb := range keys.Bindings(m) {
		if m.Allows(pb.Act.Capability()) {
			reachable = append(reachable, pb)
		}
	}

	for _, cat := range keymap.GroupByCategory(reachable) {
		buttons := mergeButtons(cat.Bindings)
		if legendCategories[cat.Name] {
			legend = append(legend, buttons...)
			continue
		}
		rows = append(rows, ButtonRow{Category: cat.Name, Buttons: buttons})
	}
	return rows, legend
}

func mergeButtons(bindings []keymap.ParsedBinding) []Button {
	var buttons []Button
	index := make(map[string]int)
	for _, pb := range bindings {
		act := pb.Act.String()
		if i, ok := index[act]; ok {
			buttons[i].Keys = append(buttons[i].Keys, pb.Event.String())
			continue
		}
		index[act] = len(buttons)
		buttons = append(buttons, Button{
			Label:  pb.Act.Label(),
			Action: act,
			Keys:   []string{pb.Event.String()},
			Role:   roleFor(pb.Act.Kind),
		})
	}
	return buttons
}

func roleFor(k input.Kind) theme.Role {
	switch k {
	case input.KindDigit, input.KindPoint, input.KindSeparator:
		return theme.RoleDigit
	case input.KindOperator, input.KindEquals:
		return theme.RoleOperator
	case input.KindUnary, input.KindRadix, input.KindAggregate:
		return theme.RoleFunction
	case input.KindBackspace, input.KindClear:
		return theme.RoleAccent
	default:
		return theme.RoleText
	}
}
