package event

// Evaluated is the payload of TopicEvaluated: the engine produced a result.
type Evaluated struct {
	// Expr describes the evaluation, e.g. "12 + 7" or "mean(10,20,30)".
	Expr string

	// Result is the numeric result.
	Result float64

	// Display is the rendered display text after the evaluation.
	Display string

	// Mode is the calculator mode the evaluation happened in.
	Mode string
}

// Notice is the payload of TopicNotice: a message was shown to the user.
type Notice struct {
	// Message is the text shown.
	Message string

	// Op names the action that produced it.
	Op string

	// Input is the display text the action rejected.
	Input string
}

// ModeChanged is the payload of TopicModeChanged.
type ModeChanged struct {
	From string
	To   string
}

// ThemeChanged is the payload of TopicThemeChanged.
type ThemeChanged struct {
	Name string
}

// ConfigReloaded is the payload of TopicConfigReloaded.
type ConfigReloaded struct {
	// Path is the config file that changed.
	Path string

	// Err is set when the new file could not be loaded; the previous
	// configuration stays in effect.
	Err error
}
