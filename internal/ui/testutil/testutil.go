// Package testutil has helpers for asserting on rendered plm views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Lines splits a rendered view into lines, dropping trailing blank ones.
// Styling is kept so callers can measure widths.
func Lines(view string) []string {
	lines := strings.Split(view, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineWith returns the first unstyled line of view containing substr, or "".
func LineWith(view, substr string) string {
	for line := range strings.SplitSeq(ansi.Strip(view), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
