// Package textinput provides a single-line prompt popup built on the bubbles
// text input.
package textinput

import (
	bubbletext "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/plm/internal/ui"
	"github.com/llehouerou/plm/internal/ui/action"
	"github.com/llehouerou/plm/internal/ui/popup"
	"github.com/llehouerou/plm/internal/ui/styles"
)

// charLimit bounds a single answer; titles and paths fit well within it.
const charLimit = 256

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a text prompt popup.
type Model struct {
	ui.Base
	title   string
	input   bubbletext.Model
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() bubbletext.Model {
	ti := bubbletext.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return ti
}

// Start initializes the input with a title, optional initial text and a
// placeholder shown while the field is empty.
func (m *Model) Start(title, initialText, placeholder string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input = newInput()
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetSize sets the popup dimensions and sizes the input field to fit.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-1, 0)
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input = newInput()
}

// Title returns the prompt title.
func (m *Model) Title() string {
	return m.title
}

// Value returns the text typed so far.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return bubbletext.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			return m, action.Cmd(source, Result{Canceled: true, Context: m.context})
		case tea.KeyEnter:
			return m, action.Cmd(source, Result{Text: m.input.Value(), Context: m.context})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	title := titleStyle().Render(m.title)
	hint := hintStyle().Render("Enter: confirm, Esc: cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
