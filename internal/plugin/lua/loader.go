package lua

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dshills/keycalc/internal/calc"
)

// Registrar accepts unary functions. *calc.Engine satisfies it.
type Registrar interface {
	RegisterFunc(name string, fn calc.UnaryFunc) error
}

// Load runs each script (glob patterns allowed) and registers every function
// the scripts define with r. A failing script does not stop the others; all
// errors are joined.
func (s *State) Load(r Registrar, patterns ...string) error {
	var errs []error
	for _, path := range expand(patterns, &errs) {
		if err := s.DoFile(path); err != nil {
			errs = append(errs, err)
			continue
		}
		s.logger.Debug("script loaded", "file", path)
	}

	for _, name := range s.Functions() {
		file, _ := s.Source(name)
		if err := r.RegisterFunc(name, s.Unary(name)); err != nil {
			errs = append(errs, &ScriptError{File: file, Err: err})
		}
	}
	return errors.Join(errs...)
}

func expand(patterns []string, errs *[]error) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("script pattern %q: %w", p, err))
			continue
		}
		if len(matches) == 0 {
			// Not a pattern, or a pattern with no match: let DoFile report it.
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths
}
