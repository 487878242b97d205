// Package render lays out plm's text: song fields fitted into fixed
// columns, header rows spread across the screen, and durations.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ellipsis marks a field cut to fit its column.
const ellipsis = "…"

// Sanitize makes tag text safe to draw. Invalid UTF-8 and control
// characters other than tab are dropped; no-break spaces become spaces.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// Fit sanitizes s and makes it exactly width columns wide, cutting it with
// an ellipsis or padding it with spaces. Wide runes count double.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(Sanitize(s), width, ellipsis), width)
}

// Spread puts left and right at the two ends of a width-column line with at
// least one space between them. Both may carry ANSI styling.
func Spread(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Rule is a horizontal line width columns long.
func Rule(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Blank is an empty row width columns wide.
func Blank(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
