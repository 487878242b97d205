package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/plm/internal/tags"
)

// ImportResultMsg carries the outcome of reading a music file.
type ImportResultMsg struct {
	Path string
	Info *tags.FileInfo
	Err  error
}

// importFileCmd reads tags and duration off the UI goroutine.
func importFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := tags.Read(path)
		return ImportResultMsg{Path: path, Info: info, Err: err}
	}
}
