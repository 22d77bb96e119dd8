package dispatcher

import "github.com/dshills/keycalc/internal/input"

// PreDispatchHook is called before an action is dispatched.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	PreDispatch(action *input.Action) bool
}

// PostDispatchHook is called after an action is dispatched with the result
// of the dispatch.
type PostDispatchHook interface {
	PostDispatch(action input.Action, err error)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action) bool {
	return f(action)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action input.Action, err error)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action input.Action, err error) {
	f(action, err)
}

// AddPreHook registers a pre-dispatch hook.
func (d *Dispatcher) AddPreHook(h PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, h)
}

// AddPostHook registers a post-dispatch hook.
func (d *Dispatcher) AddPostHook(h PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, h)
}

func (d *Dispatcher) hooks() ([]PreDispatchHook, []PostDispatchHook) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.preHooks, d.postHooks
}
