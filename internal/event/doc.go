// Package event provides a synchronous publish/subscribe bus for keycalc.
//
// Components announce what happened (an evaluation, a notice, a mode change,
// a config reload) without knowing who listens. The history tape, the status
// line and the logger subscribe to the topics they care about.
//
// Delivery is synchronous: Publish calls every matching handler on the
// caller's goroutine, in subscription order, before it returns. The terminal
// event loop is the only publisher of calculator events, so handlers observe
// them in the order they happened.
//
// # Topics
//
// Topics are dot-separated names. A subscription pattern ending in "*" matches
// every topic with that prefix:
//
//	bus.Subscribe("calc.*", h)   // calc.evaluated, calc.notice
//	bus.Subscribe("*", h)        // everything
//
// # Panics
//
// A handler that panics does not stop delivery to the remaining handlers. The
// panic is recovered, logged, and returned from Publish as a *PanicError.
package event
