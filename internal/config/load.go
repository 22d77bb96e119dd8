package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// candidateNames are tried in order when no config path is given.
var candidateNames = []string{"config.toml", "config.yaml", "config.yml"}

// Overrides carries command line flags. Empty fields leave the setting alone.
type Overrides struct {
	Mode     string
	Theme    string
	LogLevel string
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is an explicit config file. When empty the default directory is
	// searched and a missing file is not an error.
	Path string

	// EnvFile is a .env file whose KEYCALC_* entries apply below the real
	// environment.
	EnvFile string

	// Environ replaces the process environment, mainly for tests.
	Environ map[string]string

	// Overrides are applied last.
	Overrides Overrides

	// KnownTheme reports whether a theme name exists. Nil skips the check.
	KnownTheme func(name string) bool
}

// Load builds a Config from defaults, the config file, the .env file, the
// environment and opts.Overrides, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		path = findConfig(Dir())
	}
	if path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return nil, err
		}
	}

	vars := environ(opts.Environ)
	if opts.EnvFile != "" {
		dot, err := ReadEnvFile(opts.EnvFile)
		if err != nil {
			return nil, err
		}
		vars = mergeVars(dot, vars)
	}
	if err := cfg.ApplyEnv(vars); err != nil {
		return nil, err
	}

	cfg.Apply(opts.Overrides)
	cfg.expandPaths()

	if err := cfg.Validate(opts.KnownTheme); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile decodes the file at path over c, choosing TOML or YAML by
// extension. Relative plugin scripts are resolved against the file's directory.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	before := len(c.Plugins.Scripts)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(path, data, c)
	case ".yaml", ".yml":
		err = decodeYAML(path, data, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	for i := before; i < len(c.Plugins.Scripts); i++ {
		s := c.Plugins.Scripts[i]
		if !filepath.IsAbs(s) && !strings.HasPrefix(s, "~") {
			c.Plugins.Scripts[i] = filepath.Join(dir, s)
		}
	}
	c.Path = path
	return nil
}

// ApplyEnv overrides c with KEYCALC_* entries from vars.
func (c *Config) ApplyEnv(vars map[string]string) error {
	err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	})
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// Apply copies the non-empty overrides into c.
func (c *Config) Apply(o Overrides) {
	if o.Mode != "" {
		c.UI.Mode = o.Mode
	}
	if o.Theme != "" {
		c.UI.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
}

// ReadEnvFile parses a .env file.
func ReadEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load env file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load env file %q: %w", path, err)
	}
	return vars, nil
}

func decodeTOML(path string, data []byte, c *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(c)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: path, Message: err.Error(), Err: err}
	var strict *toml.StrictMissingError
	var derr *toml.DecodeError
	switch {
	case errors.As(err, &strict) && len(strict.Errors) > 0:
		first := strict.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Key = strings.Join(first.Key(), ".")
		pe.Message = "unknown setting"
		if pe.Key == "" {
			pe.Message += "\n" + first.String()
		}
	case errors.As(err, &derr):
		pe.Line, pe.Column = derr.Position()
		pe.Key = strings.Join(derr.Key(), ".")
		pe.Message = derr.Error()
	}
	return pe
}

var (
	yamlLinePattern  = regexp.MustCompile(`line (\d+): (.*)$`)
	yamlFieldPattern = regexp.MustCompile(`field (\S+) not found`)
)

func decodeYAML(path string, data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	msg := err.Error()
	var terr *yaml.TypeError
	if errors.As(err, &terr) && len(terr.Errors) > 0 {
		msg = terr.Errors[0]
	}
	pe := &ParseError{Path: path, Message: msg, Err: err}
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		pe.Message = m[2]
	}
	if m := yamlFieldPattern.FindStringSubmatch(pe.Message); m != nil {
		pe.Key = m[1]
		pe.Message = "unknown setting"
	}
	return pe
}

func findConfig(dir string) string {
	for _, name := range candidateNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func environ(vars map[string]string) map[string]string {
	if vars != nil {
		return vars
	}
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}

// mergeVars merges maps, later maps overriding earlier keys.
func mergeVars(sets ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

func (c *Config) expandPaths() {
	c.History.Path = expandHome(c.History.Path)
	c.Logging.File = expandHome(c.Logging.File)
	for i, s := range c.Plugins.Scripts {
		c.Plugins.Scripts[i] = expandHome(s)
	}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
