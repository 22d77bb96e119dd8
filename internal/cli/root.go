// Package cli defines the command-line interface for keycalc.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/logging"
	"github.com/dshills/keycalc/internal/plugin/lua"
	"github.com/dshills/keycalc/internal/theme"
)

// Version information (set via ldflags during build).
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	Mode       string
	Theme      string
}

// loadOptions turns the flags into config loading options. Flags override
// every other source.
func (o *Options) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		Path:    o.ConfigPath,
		EnvFile: o.EnvFile,
		Overrides: config.Overrides{
			Mode:     o.Mode,
			Theme:    o.Theme,
			LogLevel: o.LogLevel,
		},
		KnownTheme: theme.NewRegistry().Has,
	}
}

func (o *Options) loadConfig() (*config.Config, error) {
	return config.Load(o.loadOptions())
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	lua.Version = Version

	rootCmd := newRootCommand(&Options{}, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keycalc",
		Short: "keycalc is a keyboard-driven terminal calculator",
		Long: "keycalc is a terminal calculator with standard, scientific, programmer and statistics modes.\n" +
			"Run without a command to open the interactive calculator.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logLevel(opts)
			logger = logging.NewLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a config file (.toml, .yaml); default "+config.Dir()+"/config.toml")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Path to a .env file with KEYCALC_* settings")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", "", "Start mode (standard, scientific, programmer, statistics)")
	cmd.PersistentFlags().StringVarP(&opts.Theme, "theme", "t", "", "Theme name (see keycalc themes)")

	cmd.AddCommand(
		newEvalCommand(opts),
		newHistoryCommand(opts),
		newKeysCommand(opts),
		newThemesCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// logLevel resolves the stderr log level like any other setting: flag, then
// KEYCALC_LOG_LEVEL, then the config file. A config that fails to load falls
// back to the flag; the command reports the load error itself.
func logLevel(opts *Options) logging.Level {
	cfg, err := opts.loadConfig()
	if err != nil {
		return logging.ParseLevel(opts.LogLevel)
	}
	return logging.ParseLevel(cfg.Logging.Level)
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
