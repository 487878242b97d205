// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/plm/internal/app/handler"
	"github.com/llehouerou/plm/internal/keymap"
	"github.com/llehouerou/plm/internal/ui/popup"
	"github.com/llehouerou/plm/internal/ui/status"
)

// handleKey routes a key press through the handler chain.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	return handler.Chain(msg,
		m.handleInterruptKeys,
		m.handlePopupKeys,
		m.handleActionKeys,
	)
}

// handleInterruptKeys quits on ctrl+c, even while a popup is open.
func (m *Model) handleInterruptKeys(msg tea.KeyMsg) handler.Result {
	if msg.String() != "ctrl+c" {
		return handler.Pass
	}
	return handler.Run(tea.Quit)
}

// handlePopupKeys sends every key to the open popup.
func (m *Model) handlePopupKeys(msg tea.KeyMsg) handler.Result {
	p := m.activePopup()
	if p == nil {
		return handler.Pass
	}
	_, cmd := p.Update(msg)
	return handler.Run(cmd)
}

// activePopup returns the popup drawn over the song list, or nil. Only one
// is open at a time.
func (m *Model) activePopup() popup.Popup {
	switch {
	case m.Prompting():
		return &m.Prompt
	case m.Confirming():
		return &m.Confirm
	case m.ShowHelp:
		return &m.Help
	}
	return nil
}

// handleActionKeys runs the action bound to key.
func (m *Model) handleActionKeys(msg tea.KeyMsg) handler.Result {
	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return handler.Run(tea.Quit)
	case keymap.ActionHelp:
		m.openHelp()
	case keymap.ActionAdd:
		return handler.Run(m.openPrompt(promptTitle, "Song title", "", "e.g. Clair de Lune"))
	case keymap.ActionRemove:
		return handler.Run(m.startRemove())
	case keymap.ActionImport:
		return handler.Run(m.openPrompt(promptImport, "Import from file", "", m.importPlaceholder()))
	case keymap.ActionClear:
		m.startClear()
	case keymap.ActionPlay:
		m.playCurrent()
	case keymap.ActionNext:
		m.next()
	case keymap.ActionPrev:
		m.prev()
	case keymap.ActionList:
		m.ViewMode = ViewList
		m.refresh()
	case keymap.ActionShuffle:
		m.shuffle()
	case keymap.ActionRepeat:
		m.repeat()
	case keymap.ActionScrollDown:
		m.SongList.ScrollBy(1)
	case keymap.ActionScrollUp:
		m.SongList.ScrollBy(-1)
	default:
		return handler.Pass
	}
	return handler.Consumed
}

func (m *Model) startRemove() tea.Cmd {
	if m.Playlist.IsEmpty() {
		m.Status = status.Info(status.Empty)
		return nil
	}
	initial := ""
	if cur, ok := m.Playlist.Current(); ok {
		initial = cur.Title
	}
	return m.openPrompt(promptRemove, "Remove song (title)", initial, "")
}

// helpContexts are the binding groups listed in the help popup.
var helpContexts = []string{"playlist", "view", "global"}

func (m *Model) openHelp() {
	m.ShowHelp = true
	m.Help.SetContexts(helpContexts)
	m.Help.SetSize(popup.ContentWidth(m.Width), m.Height)
}

// clearContext tags the confirmation asked before clearing the playlist.
const clearContext = "clear"

func (m *Model) startClear() {
	if m.Playlist.IsEmpty() {
		m.Status = status.Info(status.Empty)
		return
	}
	message := "Remove all " + english.Plural(m.Playlist.Len(), "song", "") + "?"
	m.Confirm.Show("Clear playlist", message, clearContext, popup.ContentWidth(m.Width), m.Height)
}

func (m *Model) importPlaceholder() string {
	if m.Config != nil && m.Config.ImportDir != "" {
		return "relative to " + m.Config.ImportDir
	}
	return "path/to/song.mp3"
}
