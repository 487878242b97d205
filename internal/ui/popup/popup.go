// Package popup renders modal boxes over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/plm/internal/ui/styles"
)

// maxWidth caps auto-fitted popups so prompts stay compact on wide terminals.
const maxWidth = 60

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+6, maxWidth, screenW-4)
	width = max(width, 10)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Primary).
		Width(width-2). // Account for border
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// ContentWidth returns the inner width RenderBordered leaves for content on
// a screen of the given width.
func ContentWidth(screenW int) int {
	return max(min(maxWidth, screenW-4)-6, 1)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center centers pre-rendered content in the terminal.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := maxLineWidth(box)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString("\n")
	}
	for i, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// Compose overlays popupView on top of base. Blank overlay lines keep the
// base line; other lines replace the base columns the overlay covers.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		overlay := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}
		suffix := ""
		if endCol < width {
			suffix = ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = prefix + overlay + suffix
	}

	return strings.Join(baseLines, "\n")
}
