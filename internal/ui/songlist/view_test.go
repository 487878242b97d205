package songlist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/testutil"
)

func songs(n int) []playlist.SongView {
	out := make([]playlist.SongView, n)
	for i := range out {
		out[i] = playlist.SongView{
			Title:    fmt.Sprintf("Song %d", i+1),
			Artist:   fmt.Sprintf("Artist %d", i+1),
			Duration: 60 + i,
		}
	}
	return out
}

func TestView_Empty(t *testing.T) {
	m := New("Playlist")
	m.SetSize(60, 10)

	stripped := ansi.Strip(m.View())

	if !strings.Contains(stripped, "Playlist (0/0)") {
		t.Errorf("empty list should show 'Playlist (0/0)', got: %s", stripped)
	}
	if !strings.Contains(stripped, "Playlist is empty.") {
		t.Errorf("empty list should say it is empty, got: %s", stripped)
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New("Playlist")
	m.SetSongs("Playlist", songs(3), 0)

	if got := m.View(); got != "" {
		t.Errorf("View() with zero size = %q, want empty", got)
	}
}

func TestView_Rows(t *testing.T) {
	m := New("Playlist")
	m.SetSize(80, 10)
	m.SetSongs("Playlist", []playlist.SongView{
		{Title: "Song A", Artist: "Artist A", Duration: 180},
		{Title: "Song B", Artist: "Artist B", Duration: 200},
	}, 1)

	stripped := ansi.Strip(m.View())

	for _, want := range []string{"Playlist (2/2)", "Song A", "Artist A", "3:00", "Song B", "3:20"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("view should contain %q, got: %s", want, stripped)
		}
	}

	line := testutil.LineWith(stripped, "Song B")
	if !strings.Contains(line, playingSymbol) {
		t.Errorf("current song row should carry the playing marker, got: %q", line)
	}
	line = testutil.LineWith(stripped, "Song A")
	if strings.Contains(line, playingSymbol) {
		t.Errorf("other rows should not carry the playing marker, got: %q", line)
	}
}

func TestView_NoHighlight(t *testing.T) {
	m := New("Shuffled")
	m.SetSize(80, 10)
	m.SetSongs("Shuffled", songs(3), -1)

	stripped := ansi.Strip(m.View())

	if strings.Contains(stripped, playingSymbol) {
		t.Errorf("no row should be highlighted, got: %s", stripped)
	}
	if !strings.Contains(stripped, "Shuffled (0/3)") {
		t.Errorf("header should show 'Shuffled (0/3)', got: %s", stripped)
	}
}

func TestView_LineWidth(t *testing.T) {
	m := New("Playlist")
	m.SetSize(50, 8)
	m.SetSongs("Playlist", []playlist.SongView{
		{Title: strings.Repeat("Long Title ", 10), Artist: strings.Repeat("Long Artist ", 10), Duration: 3725},
	}, 0)

	for _, line := range testutil.Lines(m.View()) {
		if w := ansi.StringWidth(line); w != 50 {
			t.Errorf("line width = %d, want 50: %q", w, ansi.Strip(line))
		}
	}
}

func TestSetSongs_ScrollsToPlaying(t *testing.T) {
	tests := []struct {
		name       string
		playing    int
		wantOffset int
	}{
		{"top", 0, 0},
		{"within first page", 2, 0},
		{"near page end", 5, 2},
		{"last", 19, 14},
		{"none", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("Playlist")
			m.SetSize(60, 10) // 6 visible rows
			m.SetSongs("Playlist", songs(20), tt.playing)

			if got := m.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestSetSongs_OutOfRangePlaying(t *testing.T) {
	m := New("Playlist")
	m.SetSongs("Playlist", songs(2), 5)

	if got := m.Playing(); got != -1 {
		t.Errorf("Playing() = %d, want -1", got)
	}
}

func TestScrollBy_Clamps(t *testing.T) {
	m := New("Playlist")
	m.SetSize(60, 10)
	m.SetSongs("Playlist", songs(10), -1)

	m.ScrollBy(100)
	if got := m.Offset(); got != 4 {
		t.Errorf("Offset() after large scroll = %d, want 4", got)
	}

	m.ScrollBy(-100)
	if got := m.Offset(); got != 0 {
		t.Errorf("Offset() after negative scroll = %d, want 0", got)
	}
}

func TestSetSongs_ShrinkClampsOffset(t *testing.T) {
	m := New("Playlist")
	m.SetSize(60, 10)
	m.SetSongs("Playlist", songs(20), 19)

	m.SetSongs("Playlist", songs(3), 0)

	if got := m.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}
