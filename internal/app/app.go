// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/plm/internal/config"
	"github.com/llehouerou/plm/internal/keymap"
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/confirm"
	"github.com/llehouerou/plm/internal/ui/helpbindings"
	"github.com/llehouerou/plm/internal/ui/songlist"
	"github.com/llehouerou/plm/internal/ui/status"
	"github.com/llehouerou/plm/internal/ui/textinput"
)

// ViewMode selects what the song list shows.
type ViewMode int

const (
	ViewList     ViewMode = iota // playlist order with the cursor highlighted
	ViewShuffled                 // last shuffled snapshot
	ViewRepeat                   // playlist replayed from the start
)

// String returns the panel title of the view.
func (v ViewMode) String() string {
	switch v {
	case ViewShuffled:
		return "Shuffled"
	case ViewRepeat:
		return "Repeat"
	default:
		return "Playlist"
	}
}

// Model is the root application model containing all state.
type Model struct {
	Playlist *playlist.Playlist
	Config   *config.Config
	Rand     playlist.Rand
	Keys     *keymap.Resolver
	SongList songlist.Model
	Prompt   textinput.Model
	Confirm  confirm.Model
	Help     helpbindings.Model
	ViewMode ViewMode
	Status   status.Line
	ShowHelp bool
	Width    int
	Height   int

	prompt   promptKind
	draft    draft
	shuffled []playlist.SongView
}

// New creates the application model around an existing playlist.
func New(cfg *config.Config, pl *playlist.Playlist, rng playlist.Rand) Model {
	m := Model{
		Playlist: pl,
		Config:   cfg,
		Rand:     rng,
		Keys:     keymap.NewResolver(keymap.All),
		SongList: songlist.New(ViewList.String()),
		Prompt:   textinput.New(),
		Confirm:  confirm.New(),
		Help:     helpbindings.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Prompting reports whether a text prompt is open.
func (m Model) Prompting() bool {
	return m.prompt != promptNone
}

// Confirming reports whether a confirmation popup is open.
func (m Model) Confirming() bool {
	return m.Confirm.Active()
}

// Shuffled returns the snapshot shown in the shuffled view.
func (m Model) Shuffled() []playlist.SongView {
	return m.shuffled
}
