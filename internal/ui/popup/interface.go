package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal box drawn over the song list: the text prompt, the
// clear confirmation and the key help. While one is open it receives every
// key, and it answers through an action.Msg.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View is the content only; RenderBordered adds the frame.
	View() string
	SetSize(width, height int)
}
