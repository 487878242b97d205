package textinput

// source names this popup in action messages.
const source = "textinput"

// Result is the submitted text, or Canceled when escape closed the prompt.
// Context is whatever the caller passed to Start.
type Result struct {
	Text     string
	Context  any
	Canceled bool
}

// Name implements action.Action.
func (Result) Name() string { return "textinput.result" }
