package theme

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds themes by name, remembering registration order for cycling.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]*Theme
	order  []string
}

// NewRegistry creates a registry preloaded with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	for _, t := range builtins() {
		_ = r.Register(t)
	}
	return r
}

// Register adds a theme. Names must be unique.
func (r *Registry) Register(t *Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.themes[t.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTheme, t.Name)
	}
	r.themes[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Get returns the theme registered under name.
func (r *Registry) Get(name string) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[name]
	return ok
}

// Names returns all theme names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Next returns the theme registered after name, wrapping around.
// An unknown name yields the first registered theme.
func (r *Registry) Next(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return ""
	}
	for i, n := range r.order {
		if n == name {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
