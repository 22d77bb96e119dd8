package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/renderer"
)

func newKeysCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys reachable in a mode",
		Long:  "List the key bindings reachable in the start mode (or --mode), including config overrides.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			registry := keymap.NewRegistry()
			if err := keymap.LoadDefaults(registry); err != nil {
				return err
			}
			if err := keymap.ApplyOverrides(registry, cfg.Keymap); err != nil {
				return err
			}

			m := cfg.StartMode()
			rows, legend := renderer.Keypad(registry, m)

			title := cases.Title(language.English)
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s mode\n", title.String(m.String()))
			for _, row := range rows {
				_, _ = fmt.Fprintf(w, "\n%s\n", title.String(row.Category))
				writeButtons(w, row.Buttons)
			}
			if len(legend) > 0 {
				_, _ = fmt.Fprintf(w, "\n%s\n", title.String("other"))
				writeButtons(w, legend)
			}
			return nil
		},
	}
}

func writeButtons(w io.Writer, buttons []renderer.Button) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range buttons {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", strings.Join(b.Keys, ", "), b.Label, b.Action)
	}
	_ = tw.Flush()
}
