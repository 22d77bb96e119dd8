package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/theme"
)

// AppName names the config and state directories.
const AppName = "keycalc"

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "KEYCALC_"

// Config holds all keycalc settings.
type Config struct {
	UI      UIConfig      `toml:"ui" yaml:"ui" envPrefix:"UI_"`
	History HistoryConfig `toml:"history" yaml:"history" envPrefix:"HISTORY_"`
	Plugins PluginConfig  `toml:"plugins" yaml:"plugins" envPrefix:"PLUGINS_"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" envPrefix:"LOG_"`

	// Keymap holds per-mode key overrides: section ("global" or a mode name)
	// to key specification to action, e.g. keymap.scientific."t" = "unary:tan".
	Keymap map[string]map[string]string `toml:"keymap" yaml:"keymap"`

	// Path is the config file that was read, empty when none was found.
	Path string `toml:"-" yaml:"-"`
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	// Mode is the mode at startup.
	Mode string `toml:"mode" yaml:"mode" env:"MODE"`
	// Theme is the theme name.
	Theme string `toml:"theme" yaml:"theme" env:"THEME"`
	// Hints shows key hints under the buttons.
	Hints bool `toml:"hints" yaml:"hints" env:"HINTS"`
}

// HistoryConfig configures the calculation tape.
type HistoryConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled" env:"ENABLED"`
	// Path is the SQLite database. Empty keeps history in memory only.
	Path string `toml:"path" yaml:"path" env:"PATH"`
	// Limit caps the stored entries; 0 means unlimited.
	Limit int `toml:"limit" yaml:"limit" env:"LIMIT"`
}

// PluginConfig configures Lua functions.
type PluginConfig struct {
	// Scripts are file paths or glob patterns.
	Scripts []string `toml:"scripts" yaml:"scripts" env:"SCRIPTS" envSeparator:","`
	// Timeout bounds each script call, as a Go duration string.
	Timeout string `toml:"timeout" yaml:"timeout" env:"TIMEOUT"`
}

// LoggingConfig configures the log sink.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" env:"LEVEL"`
	// File receives the interactive UI's logs.
	File string `toml:"file" yaml:"file" env:"FILE"`
}

// Default returns the built-in settings.
func Default() *Config {
	state := StateDir()
	return &Config{
		UI: UIConfig{
			Mode:  mode.NameStandard,
			Theme: theme.DefaultName,
			Hints: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(state, "history.db"),
			Limit:   1000,
		},
		Plugins: PluginConfig{
			Timeout: "1s",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(state, AppName+".log"),
		},
		Keymap: map[string]map[string]string{},
	}
}

// StartMode returns the parsed ui.mode, Standard when invalid.
func (c *Config) StartMode() mode.Mode {
	m, err := mode.Parse(c.UI.Mode)
	if err != nil {
		return mode.Standard
	}
	return m
}

// PluginTimeout returns the parsed plugins.timeout, zero when invalid.
func (c *Config) PluginTimeout() time.Duration {
	d, err := time.ParseDuration(c.Plugins.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Dir returns the directory holding the default config file.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName)
}

// StateDir returns the directory for history and logs, following
// XDG_STATE_HOME.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(home, ".local", "state", AppName)
}
