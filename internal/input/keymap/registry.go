package keymap

import (
	"fmt"
	"sync"

	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/mode"
)

// Registry manages all keymaps and provides binding lookup.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// order records registration order for stable listings.
	order []string
}

// NewRegistry creates a new keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keymaps[km.Name]; !exists {
		r.order = append(r.order, km.Name)
	}
	r.keymaps[km.Name] = parsed
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keymaps[name]; !ok {
		return
	}
	delete(r.keymaps, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns a keymap by name.
func (r *Registry) Get(name string) *ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// match is a candidate binding with its precedence score.
type match struct {
	binding ParsedBinding
	score   int
	seq     int
}

func score(km *ParsedKeymap, pb *ParsedBinding) int {
	s := km.Priority*100 + pb.Priority
	// Bonus for mode-specific bindings
	if !km.global {
		s += 50
	}
	return s
}

// Lookup finds the best matching binding for ev in mode m.
func (r *Registry) Lookup(m mode.Mode, ev key.Event) (ParsedBinding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *match
	for seq, name := range r.order {
		km := r.keymaps[name]
		if !km.Applies(m) {
			continue
		}
		for i := range km.ParsedBindings {
			pb := &km.ParsedBindings[i]
			if !pb.Match(ev) {
				continue
			}
			cand := match{binding: *pb, score: score(km, pb), seq: seq}
			// Later registrations win ties.
			if best == nil || cand.score >= best.score {
				best = &cand
			}
		}
	}
	if best == nil {
		return ParsedBinding{}, false
	}
	return best.binding, true
}

// Bindings returns the effective bindings for mode m: for each key only the
// winning binding is kept. Results are ordered by keymap registration and then
// binding order.
func (r *Registry) Bindings(m mode.Mode) []ParsedBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	winners := make(map[string]match)
	var all []match
	for seq, name := range r.order {
		km := r.keymaps[name]
		if !km.Applies(m) {
			continue
		}
		for i := range km.ParsedBindings {
			pb := &km.ParsedBindings[i]
			cand := match{binding: *pb, score: score(km, pb), seq: seq}
			k := pb.Event.String()
			if cur, ok := winners[k]; !ok || cand.score >= cur.score {
				winners[k] = cand
			}
			all = append(all, match{binding: *pb})
		}
	}

	result := make([]ParsedBinding, 0, len(winners))
	seen := make(map[string]bool)
	// Keep the position of the first binding for each key.
	for _, c := range all {
		k := c.binding.Event.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, winners[k].binding)
	}
	return result
}

// Keymaps returns all registered keymaps in registration order.
func (r *Registry) Keymaps() []*ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ParsedKeymap, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.keymaps[name])
	}
	return result
}

// Clear removes all keymaps.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps = make(map[string]*ParsedKeymap)
	r.order = nil
}
