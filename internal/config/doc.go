// Package config loads keycalc settings.
//
// Settings come from several sources, later ones overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  5. Command line flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  4. KEYCALC_* environment   │
//	├─────────────────────────────┤
//	│  3. .env file (--env-file)  │
//	├─────────────────────────────┤
//	│  2. Config file             │  ← ~/.config/keycalc/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML (.toml) or YAML (.yaml, .yml). Unknown keys are
// rejected with a ParseError naming the key; invalid values are reported as
// FieldErrors by Validate.
//
// A Watcher notifies the application when the config file changes so the
// theme and keymap can be reloaded without restarting.
package config
