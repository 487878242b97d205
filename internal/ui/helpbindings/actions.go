package helpbindings

// source names this popup in action messages.
const source = "help"

// Close asks the app to hide the help popup.
type Close struct{}

// Name implements action.Action.
func (Close) Name() string { return "help.close" }
