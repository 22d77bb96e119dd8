package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/mode"
)

// Result is the state after Eval.
type Result struct {
	// Display is the display buffer text.
	Display string

	// Notices are the messages shown during the run, in order.
	Notices []string

	// Mode is the mode at the end of the run.
	Mode mode.Mode

	// Pending is the pending operator label, empty when none.
	Pending string
}

// Eval dispatches actions without a screen. Format errors become notices and
// the run continues; unreachable actions and invalid operands are ignored as
// they are interactively. A quit action ends the run early. Any other error
// stops the run and is returned with the result so far.
func (app *Application) Eval(ctx context.Context, actions []input.Action) (Result, error) {
	var runErr error
	for len(actions) > 0 {
		n, err := app.dispatcher.DispatchAll(ctx, actions)
		if err == nil {
			break
		}
		failed := actions[n]
		actions = actions[n+1:]

		var fe *calc.FormatError
		if errors.As(err, &fe) {
			// The engine already sent the notice.
			continue
		}
		if !errors.Is(err, ErrQuit) {
			runErr = fmt.Errorf("%s: %w", failed, err)
		}
		break
	}

	return Result{
		Display: app.screen.display,
		Notices: app.screen.takeNotices(),
		Mode:    app.modes.Current(),
		Pending: pendingLabel(app.engine.State()),
	}, runErr
}
