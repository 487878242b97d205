package confirm

// source names this popup in action messages.
const source = "confirm"

// Result is the answer to a confirmation. Context is whatever the caller
// passed to Show.
type Result struct {
	Confirmed bool
	Context   any
}

// Name implements action.Action.
func (Result) Name() string { return "confirm.result" }
