// Package status holds the user-facing playlist messages shared by the TUI
// and the text menu, and renders the TUI status line.
package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/render"
	"github.com/llehouerou/plm/internal/ui/styles"
)

// Fixed playlist messages.
const (
	Empty        = "Playlist is empty."
	NoCurrent    = "No song is currently selected."
	EndReached   = "End of playlist reached."
	StartReached = "Beginning of playlist reached."
	Added        = "Song added to the playlist."
	Repeating    = "Repeating playlist from the start."
	Cleared      = "Playlist cleared."
)

// NowPlaying reports the current song.
func NowPlaying(s playlist.SongView) string {
	return fmt.Sprintf("Now playing: %s - %s (%d seconds)", s.Title, s.Artist, s.Duration)
}

// NotFound reports a failed removal.
func NotFound(title string) string {
	return fmt.Sprintf("Song '%s' not found in the playlist.", title)
}

// Removed reports a successful removal.
func Removed(title string) string {
	return fmt.Sprintf("Song '%s' removed from the playlist.", title)
}

// Imported reports a song added from a music file.
func Imported(s playlist.SongView) string {
	return fmt.Sprintf("Imported '%s' by %s (%s).", s.Title, orUnknown(s.Artist), render.Duration(s.Duration))
}

// Shuffled reports a new shuffled order.
func Shuffled(count int) string {
	return "Shuffled " + english.Plural(count, "song", "") + "."
}

// SongLine describes one song in a listing.
func SongLine(s playlist.SongView) string {
	return fmt.Sprintf("Title: %s, Artist: %s, Duration: %d seconds", s.Title, s.Artist, s.Duration)
}

// Summary describes a playlist size, e.g. "3 songs, 9:40".
func Summary(count, seconds int) string {
	return english.Plural(count, "song", "") + ", " + render.Duration(seconds)
}

func orUnknown(artist string) string {
	if artist == "" {
		return "unknown artist"
	}
	return artist
}

// Kind selects the styling of a status line.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// Line is a one-line message shown under the song list.
type Line struct {
	Text string
	Kind Kind
}

// Info returns an informational line.
func Info(text string) Line { return Line{Text: text, Kind: KindInfo} }

// Success returns a success line.
func Success(text string) Line { return Line{Text: text, Kind: KindSuccess} }

// Error returns an error line.
func Error(text string) Line { return Line{Text: text, Kind: KindError} }

// Render styles the line and truncates it to width.
func (l Line) Render(width int) string {
	if l.Text == "" || width <= 0 {
		return ""
	}
	text := ansi.Truncate(render.Sanitize(l.Text), width, "…")
	return l.style().Render(text)
}

func (l Line) style() lipgloss.Style {
	s := styles.T().S()
	switch l.Kind {
	case KindSuccess:
		return s.Success
	case KindError:
		return s.Error
	default:
		return s.Base
	}
}
