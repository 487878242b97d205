// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/plm/internal/ui/action"
	"github.com/llehouerou/plm/internal/ui/confirm"
	"github.com/llehouerou/plm/internal/ui/helpbindings"
	"github.com/llehouerou/plm/internal/ui/popup"
	"github.com/llehouerou/plm/internal/ui/textinput"
)

// chromeHeight is the header, status and help lines around the song list.
const chromeHeight = 3

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.SongList.SetSize(m.Width, max(m.Height-chromeHeight, 0))
		if p := m.activePopup(); p != nil {
			p.SetSize(popup.ContentWidth(m.Width), m.Height)
		}
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case action.Msg:
		var cmd tea.Cmd
		switch result := msg.Action.(type) {
		case textinput.Result:
			cmd = m.handlePromptResult(result)
		case confirm.Result:
			m.handleConfirmResult(result)
		case helpbindings.Close:
			m.ShowHelp = false
		}
		return m, cmd

	case ImportResultMsg:
		m.handleImportResult(msg)
		return m, nil
	}

	// cursor blink
	if p := m.activePopup(); p != nil {
		_, cmd := p.Update(msg)
		return m, cmd
	}
	return m, nil
}
