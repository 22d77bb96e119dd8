package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNotAvailable indicates the action is not reachable in the current mode.
	ErrNotAvailable = errors.New("dispatcher: action not available in this mode")

	// ErrUnbound indicates no binding exists for a key.
	ErrUnbound = errors.New("dispatcher: key not bound")

	// ErrActionCancelled indicates the action was cancelled by a hook.
	ErrActionCancelled = errors.New("dispatcher: action cancelled by hook")

	// ErrInvalidAction indicates the action is invalid.
	ErrInvalidAction = errors.New("dispatcher: invalid action")

	// ErrNoEngine indicates SetEngine was never called.
	ErrNoEngine = errors.New("dispatcher: no engine")

	// ErrQuit is returned for the quit action. It signals a normal exit.
	ErrQuit = errors.New("quit")
)

// IsSilent reports whether err should be ignored by the user interface:
// it is nil, an unreachable action, an unbound key, or an invalid operand.
func IsSilent(err error) bool {
	if err == nil {
		return true
	}
	return errors.Is(err, ErrNotAvailable) ||
		errors.Is(err, ErrUnbound) ||
		errors.Is(err, ErrActionCancelled) ||
		isInvalidOperand(err)
}
