package calc

// DisplaySink receives the display buffer after every change.
type DisplaySink interface {
	SetDisplay(text string)
}

// Notifier receives user-facing notices for format failures.
type Notifier interface {
	Notify(message string)
}

// DisplayFunc adapts a function to a DisplaySink.
type DisplayFunc func(text string)

// SetDisplay calls f(text).
func (f DisplayFunc) SetDisplay(text string) { f(text) }

// NotifyFunc adapts a function to a Notifier.
type NotifyFunc func(message string)

// Notify calls f(message).
func (f NotifyFunc) Notify(message string) { f(message) }

type discardSink struct{}

func (discardSink) SetDisplay(string) {}
func (discardSink) Notify(string)     {}

// Evaluation describes one computed result, reported to an Observer.
type Evaluation struct {
	// Expr is a readable form of the computation (e.g., "5 + 3", "√(9)").
	Expr string

	// Result is the numeric result.
	Result float64

	// Display is the text shown for the result.
	Display string
}

// Observer is called after each evaluation that combined or transformed values.
// Pass-through evaluations (the first operand of a calculation) are not reported.
type Observer func(Evaluation)
