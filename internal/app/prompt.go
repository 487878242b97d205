// internal/app/prompt.go
package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/plm/internal/errmsg"
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/confirm"
	"github.com/llehouerou/plm/internal/ui/popup"
	"github.com/llehouerou/plm/internal/ui/render"
	"github.com/llehouerou/plm/internal/ui/status"
	"github.com/llehouerou/plm/internal/ui/textinput"
)

var errNoPath = errors.New("no path given")

// promptKind identifies which question the open prompt answers.
type promptKind int

const (
	promptNone promptKind = iota
	promptTitle
	promptArtist
	promptDuration
	promptRemove
	promptImport
)

// draft collects the answers of the add-song prompts.
type draft struct {
	title  string
	artist string
}

func (m *Model) openPrompt(kind promptKind, title, initial, placeholder string) tea.Cmd {
	m.prompt = kind
	m.Prompt.Start(title, initial, placeholder, kind, popup.ContentWidth(m.Width), m.Height)
	return m.Prompt.Init()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.Prompt.Reset()
}

// handlePromptResult advances the prompt sequence or applies its answer.
func (m *Model) handlePromptResult(r textinput.Result) tea.Cmd {
	kind, _ := r.Context.(promptKind)
	if kind == promptNone || kind != m.prompt {
		return nil
	}
	m.closePrompt()

	if r.Canceled {
		m.draft = draft{}
		return nil
	}

	switch kind {
	case promptTitle:
		if strings.TrimSpace(r.Text) == "" {
			m.Status = status.Error(errmsg.Format(errmsg.OpSongAdd, playlist.ErrEmptyTitle))
			return nil
		}
		m.draft = draft{title: r.Text}
		return m.openPrompt(promptArtist, "Artist", "", "")

	case promptArtist:
		m.draft.artist = r.Text
		return m.openPrompt(promptDuration, "Duration (seconds or m:ss)", "", "e.g. 3:45")

	case promptDuration:
		d := m.draft
		m.draft = draft{}
		secs, err := render.ParseDuration(r.Text)
		if err != nil {
			m.Status = status.Error(errmsg.Format(errmsg.OpParseDuration, err))
			return nil
		}
		m.addSong(d.title, d.artist, secs)

	case promptRemove:
		m.removeSong(r.Text)

	case promptImport:
		path := strings.TrimSpace(r.Text)
		if path == "" {
			m.Status = status.Error(errmsg.Format(errmsg.OpImportFile, errNoPath))
			return nil
		}
		if m.Config != nil {
			path = m.Config.ResolveImportPath(path)
		}
		m.Status = status.Info("Reading " + path + "...")
		return importFileCmd(path)
	}
	return nil
}

// handleConfirmResult applies an answered confirmation.
func (m *Model) handleConfirmResult(r confirm.Result) {
	m.Confirm.Reset()
	if ctx, _ := r.Context.(string); ctx != clearContext || !r.Confirmed {
		return
	}
	m.clearPlaylist()
}
