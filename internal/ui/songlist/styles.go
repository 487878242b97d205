package songlist

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/plm/internal/ui/styles"
)

const playingSymbol = "\u25B6" // ▶

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func songStyle() lipgloss.Style {
	return styles.T().S().Base
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func durationStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func emptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
