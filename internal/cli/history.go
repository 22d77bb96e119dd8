package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/keycalc/internal/tape"
)

// errNoHistory is returned when history is disabled or kept in memory only.
var errNoHistory = errors.New("history is not persisted; set history.enabled and history.path")

func newHistoryCommand(opts *Options) *cobra.Command {
	var (
		limit    int
		clearAll bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the calculation tape",
		Long:  "Show the most recent evaluations recorded by the interactive calculator, oldest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled || cfg.History.Path == "" {
				return errNoHistory
			}

			store, err := tape.OpenSQLite(cfg.History.Path, cfg.History.Limit)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if clearAll {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				LoggerFromContext(cmd.Context()).Info("history cleared", "path", cfg.History.Path)
				return nil
			}

			entries, err := store.Latest(cmd.Context(), limit)
			if err != nil {
				return err
			}
			slices.Reverse(entries)

			if asJSON {
				out, err := entriesJSON(entries)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(out)
				return nil
			}
			writeEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")

	return cmd
}

func writeEntries(w io.Writer, entries []tape.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "no history")
		return
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s  %s = %s  [%s]\n",
			e.Time.Local().Format(time.DateTime), e.Expr, e.Display, e.Mode)
	}
}

func entriesJSON(entries []tape.Entry) ([]byte, error) {
	doc := `{"entries":[]}`
	for _, e := range entries {
		item := "{}"
		var err error
		for _, f := range []struct {
			path  string
			value any
		}{
			{"id", e.ID},
			{"session", e.Session.String()},
			{"seq", e.Seq},
			{"expr", e.Expr},
			{"result", finite(e.Result)},
			{"display", e.Display},
			{"mode", e.Mode},
			{"time", e.Time.UTC().Format(time.RFC3339Nano)},
		} {
			if item, err = sjson.Set(item, f.path, f.value); err != nil {
				return nil, fmt.Errorf("encode entry %d: %w", e.ID, err)
			}
		}
		if doc, err = sjson.SetRaw(doc, "entries.-1", item); err != nil {
			return nil, fmt.Errorf("encode entry %d: %w", e.ID, err)
		}
	}
	return pretty.Pretty([]byte(doc)), nil
}

// finite maps NaN and infinities to null, which JSON cannot express.
func finite(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
