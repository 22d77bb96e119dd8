package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/keycalc/internal/theme"
)

func newThemesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Long:  "List the built-in themes. The configured theme is marked with '*'; low-contrast roles are flagged.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := theme.DefaultName
			if cfg, err := opts.loadConfig(); err == nil {
				current = cfg.UI.Theme
			} else {
				LoggerFromContext(cmd.Context()).Warn("using default theme", "error", err)
			}

			registry := theme.NewRegistry()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Names() {
				th, err := registry.Get(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == current {
					marker = "*"
				}
				shade := "light"
				if th.IsDark() {
					shade = "dark"
				}
				note := ""
				if low := th.LowContrast(); len(low) > 0 {
					names := make([]string, len(low))
					for i, r := range low {
						names[i] = r.String()
					}
					note = "low contrast: " + strings.Join(names, ", ")
				}
				_, _ = fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", marker, name, shade, th.Description, note)
			}
			return tw.Flush()
		},
	}
}
