package theme

// Built-in theme names.
const (
	NameLight     = "light"
	NameDark      = "dark"
	NameSolarized = "solarized"
	NameContrast  = "contrast"

	// DefaultName is the theme used when none is configured.
	DefaultName = NameDark
)

func builtins() []*Theme {
	return []*Theme{
		MustNew(NameDark, "Dark gray with blue operators", Palette{
			RoleBackground:  "#1E1E24",
			RoleDisplay:     "#101014",
			RoleDisplayText: "#E8E8EC",
			RoleText:        "#D0D0D8",
			RoleDigit:       "#3A3A44",
			RoleOperator:    "#2F5D8C",
			RoleFunction:    "#4A4060",
			RoleAccent:      "#E0A030",
			RoleNotice:      "#FF6E6E",
		}),
		MustNew(NameLight, "Paper white with teal operators", Palette{
			RoleBackground:  "#F4F4F0",
			RoleDisplay:     "#FFFFFF",
			RoleDisplayText: "#1A1A1A",
			RoleText:        "#202020",
			RoleDigit:       "#E2E2DC",
			RoleOperator:    "#9FD3CC",
			RoleFunction:    "#D8CCE8",
			RoleAccent:      "#00707A",
			RoleNotice:      "#B00020",
		}),
		MustNew(NameSolarized, "Solarized dark", Palette{
			RoleBackground:  "#002B36",
			RoleDisplay:     "#073642",
			RoleDisplayText: "#EEE8D5",
			RoleText:        "#93A1A1",
			RoleDigit:       "#073642",
			RoleOperator:    "#268BD2",
			RoleFunction:    "#6C71C4",
			RoleAccent:      "#B58900",
			RoleNotice:      "#DC322F",
		}),
		MustNew(NameContrast, "Black and white, maximum contrast", Palette{
			RoleBackground:  "#000000",
			RoleDisplay:     "#000000",
			RoleDisplayText: "#FFFFFF",
			RoleText:        "#FFFFFF",
			RoleDigit:       "#000000",
			RoleOperator:    "#FFFF00",
			RoleFunction:    "#00FFFF",
			RoleAccent:      "#FFFFFF",
			RoleNotice:      "#FF0000",
		}),
	}
}
