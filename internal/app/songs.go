// internal/app/songs.go
package app

import (
	"errors"

	"github.com/llehouerou/plm/internal/errmsg"
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/status"
)

func (m *Model) addSong(title, artist string, duration int) {
	if err := m.Playlist.Add(title, artist, duration); err != nil {
		m.Status = status.Error(errmsg.Format(errmsg.OpSongAdd, err))
		return
	}
	m.Status = status.Success(status.Added)
	m.afterEdit()
}

func (m *Model) removeSong(title string) {
	if !m.Playlist.Remove(title) {
		m.Status = status.Error(status.NotFound(title))
		return
	}
	m.Status = status.Success(status.Removed(title))
	m.afterEdit()
}

func (m *Model) clearPlaylist() {
	m.Playlist.Clear()
	m.Status = status.Success(status.Cleared)
	m.afterEdit()
}

func (m *Model) playCurrent() {
	cur, ok := m.Playlist.Current()
	if !ok {
		m.Status = status.Info(status.NoCurrent)
		return
	}
	m.Status = status.Info(status.NowPlaying(cur))
}

func (m *Model) next() {
	if !m.Playlist.Next() {
		m.Status = status.Info(status.EndReached)
		return
	}
	m.playCurrent()
	m.refresh()
}

func (m *Model) prev() {
	if !m.Playlist.Prev() {
		m.Status = status.Info(status.StartReached)
		return
	}
	m.playCurrent()
	m.refresh()
}

func (m *Model) shuffle() {
	songs, err := m.Playlist.Shuffled(m.Rand)
	if errors.Is(err, playlist.ErrEmpty) {
		m.Status = status.Info(status.Empty)
		return
	}
	m.shuffled = songs
	m.ViewMode = ViewShuffled
	m.Status = status.Info(status.Shuffled(len(songs)))
	m.refresh()
}

func (m *Model) repeat() {
	if _, err := m.Playlist.Repeat(); errors.Is(err, playlist.ErrEmpty) {
		m.Status = status.Info(status.Empty)
		return
	}
	m.ViewMode = ViewRepeat
	m.Status = status.Info(status.Repeating)
	m.refresh()
}

func (m *Model) handleImportResult(msg ImportResultMsg) {
	if msg.Err != nil {
		m.Status = status.Error(errmsg.FormatWith(errmsg.OpImportFile, msg.Path, msg.Err))
		return
	}
	info := msg.Info
	if err := m.Playlist.Add(info.Title, info.Artist, info.Seconds()); err != nil {
		m.Status = status.Error(errmsg.FormatWith(errmsg.OpSongAdd, info.Title, err))
		return
	}
	m.Status = status.Success(status.Imported(playlist.SongView{
		Title:    info.Title,
		Artist:   info.Artist,
		Duration: info.Seconds(),
	}))
	m.afterEdit()
}

// afterEdit leaves the shuffled view, whose snapshot no longer matches the
// playlist, and redraws.
func (m *Model) afterEdit() {
	if m.ViewMode == ViewShuffled {
		m.ViewMode = ViewList
		m.shuffled = nil
	}
	m.refresh()
}

// refresh reloads the song list for the current view.
func (m *Model) refresh() {
	if m.ViewMode == ViewRepeat && m.Playlist.IsEmpty() {
		m.ViewMode = ViewList
	}

	switch m.ViewMode {
	case ViewShuffled:
		m.SongList.SetSongs(m.ViewMode.String(), m.shuffled, -1)
	case ViewRepeat:
		songs, _ := m.Playlist.Repeat()
		m.SongList.SetSongs(m.ViewMode.String(), songs, m.Playlist.CurrentIndex())
	default:
		m.SongList.SetSongs(m.ViewMode.String(), m.Playlist.List(), m.Playlist.CurrentIndex())
	}
}
