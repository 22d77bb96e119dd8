package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/keycalc/internal/app"
	"github.com/dshills/keycalc/internal/logging"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

// errNotTerminal is returned when the calculator is started without a terminal.
var errNotTerminal = errors.New("keycalc needs a terminal; use 'keycalc eval' for scripts")

// runInteractive opens the terminal calculator. Logs go to the configured
// file because the screen belongs to the calculator.
func runInteractive(cmd *cobra.Command, opts *Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	screen, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	calc, err := app.New(cfg,
		app.WithBackend(screen),
		app.WithLogger(logger),
		app.WithReload(opts.loadOptions()),
	)
	if err != nil {
		return err
	}
	defer calc.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("keycalc started",
		"version", Version,
		"config", cfg.Path,
		"mode", cfg.UI.Mode,
		"theme", cfg.UI.Theme,
	)
	if err := calc.Run(ctx); err != nil && !errors.Is(err, app.ErrQuit) {
		logger.Error("run failed", "error", err)
		return err
	}
	logger.Info("keycalc stopped")
	return nil
}
