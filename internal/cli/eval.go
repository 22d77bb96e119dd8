package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/term"

	"github.com/dshills/keycalc/internal/app"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/tape"
)

// errNoScript is returned by eval when there is nothing to run.
var errNoScript = errors.New("no script: pass keystrokes as arguments or pipe them on stdin")

func newEvalCommand(opts *Options) *cobra.Command {
	var asJSON, record bool

	cmd := &cobra.Command{
		Use:   "eval [keystrokes...]",
		Short: "Run a keystroke script and print the display",
		Long: "Run a keystroke script without the interactive screen and print the final display.\n\n" +
			"Digits, '.', ',', '=' and operator symbols are keys; words name the rest:\n" +
			"sqrt, ln, bin, hex, mean, var, back, clear, a mode name, a Lua function,\n" +
			"or any action such as op:^ or radix:bin. Without arguments the script is\n" +
			"read from stdin.",
		Example: "  keycalc eval '12+7='\n" +
			"  keycalc eval --mode statistics '10,20,30 mean'\n" +
			"  echo 'scientific 2^10=' | keycalc eval --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			actions, err := input.ParseScript(script)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logger := LoggerFromContext(cmd.Context())
			appOpts := []app.Option{app.WithLogger(logger)}
			if !record {
				appOpts = append(appOpts, app.WithStore(tape.NewMemoryStore(0)))
			}
			calc, err := app.New(cfg, appOpts...)
			if err != nil {
				return err
			}
			defer calc.Close()

			res, runErr := calc.Eval(cmd.Context(), actions)
			if asJSON {
				out, err := resultJSON(res)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(out)
			} else {
				for _, n := range res.Notices {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "notice: %s\n", n)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Display)
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&record, "record", false, "Record evaluations in the history database")

	return cmd
}

// readScript joins args, or reads r when there are none and r is not a
// terminal.
func readScript(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoScript
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errNoScript
	}
	return string(data), nil
}

func resultJSON(res app.Result) ([]byte, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, value)
		}
	}
	set("display", res.Display)
	set("mode", res.Mode.String())
	set("pending", res.Pending)
	set("notices", append([]string{}, res.Notices...))
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return pretty.Pretty([]byte(doc)), nil
}
