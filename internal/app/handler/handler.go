// Package handler routes a key press through an ordered list of handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a handler made of a key.
type Result struct {
	Consumed bool
	Cmd      tea.Cmd
}

// Pass lets the key through to the next handler.
var Pass = Result{}

// Consumed stops the chain without a command.
var Consumed = Result{Consumed: true}

// Run stops the chain and returns cmd to bubbletea.
func Run(cmd tea.Cmd) Result {
	return Result{Consumed: true, Cmd: cmd}
}

// Handler looks at a key and decides whether it owns it.
type Handler func(tea.KeyMsg) Result

// Chain offers msg to each handler in order and returns the command of the
// first one that consumes it. A key nobody wants yields nil.
func Chain(msg tea.KeyMsg, handlers ...Handler) tea.Cmd {
	for _, h := range handlers {
		if r := h(msg); r.Consumed {
			return r.Cmd
		}
	}
	return nil
}
