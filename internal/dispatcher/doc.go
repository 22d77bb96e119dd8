// Package dispatcher applies input actions to the calculation engine.
//
// The dispatcher is the hub between the input surface and the engine. For
// every action it:
//
//  1. Runs pre-dispatch hooks (which may cancel the action)
//  2. Checks the mode capability table and rejects unreachable actions
//     with ErrNotAvailable
//  3. Calls the matching engine operation, or switches mode or theme
//  4. Publishes calc.notice for format errors (evaluations are published
//     from the engine observer as calc.evaluated)
//  5. Runs post-dispatch hooks and records metrics
//
// Invalid operands and unreachable actions are silent: they are logged at
// debug level and nothing reaches the user. Format errors are shown by the
// engine's notifier and returned to the caller.
//
// # Usage
//
//	d := dispatcher.New(modes, dispatcher.WithBus(bus), dispatcher.WithLogger(log))
//	engine := calc.New(calc.WithObserver(d.Observe), calc.WithDisplay(view))
//	d.SetEngine(engine)
//
//	if err := d.HandleKey(ctx, ev); errors.Is(err, dispatcher.ErrQuit) {
//	    return
//	}
package dispatcher
