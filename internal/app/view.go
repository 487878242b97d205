// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/plm/internal/keymap"
	"github.com/llehouerou/plm/internal/ui/popup"
	"github.com/llehouerou/plm/internal/ui/render"
	"github.com/llehouerou/plm/internal/ui/status"
	"github.com/llehouerou/plm/internal/ui/styles"
)

const appTitle = "plm"

// footerActions are the bindings advertised on the help line.
var footerActions = []keymap.Action{
	keymap.ActionAdd,
	keymap.ActionRemove,
	keymap.ActionPlay,
	keymap.ActionNext,
	keymap.ActionPrev,
	keymap.ActionShuffle,
	keymap.ActionRepeat,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	base := strings.Join([]string{
		m.renderHeader(),
		m.SongList.View(),
		m.Status.Render(m.Width),
		m.renderFooter(),
	}, "\n")

	if p := m.activePopup(); p != nil {
		return popup.Compose(base, popup.RenderBordered(p.View(), m.Width, m.Height), m.Width)
	}
	return base
}

// renderHeader shows the title, playlist size and total duration, with the
// active view on the right.
func (m Model) renderHeader() string {
	s := styles.T().S()
	title := styles.Gradient(appTitle)
	summary := s.Muted.Render(status.Summary(m.Playlist.Len(), m.Playlist.TotalDuration()))
	view := s.Accent.Render(m.ViewMode.String())

	return render.Spread(" "+title+"  "+summary, view+" ", m.Width)
}

func (m Model) renderFooter() string {
	help := ansi.Truncate(keymap.ShortHelp(m.Keys, footerActions...), m.Width, "…")
	return styles.T().S().Subtle.Render(help)
}
