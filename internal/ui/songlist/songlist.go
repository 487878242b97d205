// Package songlist renders a scrollable, bordered list of playlist songs.
package songlist

import (
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui"
)

// Model holds the rows shown in the song list panel.
type Model struct {
	ui.Base
	title   string
	songs   []playlist.SongView
	playing int // row of the current song, -1 if none
	offset  int
}

// New creates an empty song list with the given panel title.
func New(title string) Model {
	return Model{title: title, playing: -1}
}

// SetSongs replaces the displayed rows. playing is the row of the current
// song, or -1 when no row should be highlighted.
func (m *Model) SetSongs(title string, songs []playlist.SongView, playing int) {
	m.title = title
	m.songs = songs
	m.playing = playing
	if playing < 0 || playing >= len(songs) {
		m.playing = -1
	}
	m.clampOffset()
	m.ensurePlayingVisible()
}

// SetSize sets the panel dimensions and keeps the highlighted row in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.clampOffset()
	m.ensurePlayingVisible()
}

// Title returns the panel title.
func (m Model) Title() string {
	return m.title
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.songs)
}

// Playing returns the highlighted row, or -1.
func (m Model) Playing() int {
	return m.playing
}

// Offset returns the first visible row.
func (m Model) Offset() int {
	return m.offset
}

// ScrollBy moves the viewport by delta rows, clamped to the list.
func (m *Model) ScrollBy(delta int) {
	m.offset += delta
	m.clampOffset()
}

func (m Model) listHeight() int {
	return m.Rows(ui.PanelOverhead)
}

func (m *Model) clampOffset() {
	maxOffset := max(len(m.songs)-m.listHeight(), 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// ensurePlayingVisible adjusts the scroll offset so the highlighted row sits
// at least ScrollMargin rows away from the panel edges when possible.
func (m *Model) ensurePlayingVisible() {
	height := m.listHeight()
	if m.playing < 0 || height <= 0 {
		return
	}

	margin := min(ui.ScrollMargin, (height-1)/2)
	if m.playing < m.offset+margin {
		m.offset = m.playing - margin
	}
	if m.playing >= m.offset+height-margin {
		m.offset = m.playing - height + margin + 1
	}
	m.clampOffset()
}
