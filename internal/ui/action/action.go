// Package action carries popup answers back to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a popup's answer. Name identifies it in messages and tests,
// e.g. "confirm.result".
type Action interface {
	Name() string
}

// Msg delivers an Action to the app. From names the popup that sent it.
type Msg struct {
	From   string
	Action Action
}

// Cmd returns a command delivering a as a Msg from the named popup.
func Cmd(from string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{From: from, Action: a}
	}
}
