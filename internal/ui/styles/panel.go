package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns the rounded border drawn around the song list.
func Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Primary)
}
