package songlist

import (
	"fmt"
	"strings"

	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui"
	"github.com/llehouerou/plm/internal/ui/render"
	"github.com/llehouerou/plm/internal/ui/styles"
)

const (
	prefixWidth = 2
	// durationWidth fits "9:59:59" plus a leading space.
	durationWidth = 8
)

// View renders the song list panel.
func (m Model) View() string {
	if !m.Sized() {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	content := m.renderHeader(innerWidth) + "\n" +
		render.Rule(innerWidth) + "\n" +
		m.renderRows(innerWidth, listHeight)

	return styles.Panel().
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the title with position and song count.
func (m Model) renderHeader(innerWidth int) string {
	text := fmt.Sprintf("%s (%d/%d)", m.title, m.playing+1, len(m.songs))
	return headerStyle().Render(render.Fit(text, innerWidth))
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}

	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.offset
		switch {
		case len(m.songs) == 0 && i == 0:
			lines = append(lines, emptyStyle().Render(render.Fit("  Playlist is empty.", innerWidth)))
		case idx >= len(m.songs):
			lines = append(lines, render.Blank(innerWidth))
		default:
			lines = append(lines, m.renderRow(m.songs[idx], idx, innerWidth))
		}
	}

	return strings.Join(lines, "\n")
}

// renderRow renders one song: marker, position, title, artist and duration.
func (m Model) renderRow(song playlist.SongView, idx, width int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingSymbol + " "
	}
	position := fmt.Sprintf("%3d. ", idx+1)

	contentWidth := max(width-prefixWidth-len(position)-durationWidth, 2)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := render.Fit(song.Title, titleWidth)
	artist := render.Fit(song.Artist, artistWidth)
	duration := fmt.Sprintf("%*s", durationWidth, render.Duration(song.Duration))

	style := songStyle()
	if idx == m.playing {
		style = playingStyle()
	}
	return style.Render(prefix+position+title+artist) + durationStyle().Render(duration)
}
