// Package styles holds the plm color theme and the lipgloss styles built
// from it.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the palette. Primary and Secondary come from the [theme] config
// section; the rest is fixed.
type Theme struct {
	Primary   lipgloss.Color // panel border, current song, header gradient start
	Secondary lipgloss.Color // view name, help headings, header gradient end

	Text  lipgloss.Color
	Dim   lipgloss.Color // durations, playlist summary
	Faint lipgloss.Color // hints, separators, empty rows

	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),
	Text:      lipgloss.Color("#c0c0c0"),
	Dim:       lipgloss.Color("#808080"),
	Faint:     lipgloss.Color("#585858"),
	Success:   lipgloss.Color("#42b883"),
	Error:     lipgloss.Color("#ff5555"),
}

var current = defaultTheme

// T returns the active theme.
func T() *Theme {
	return &current
}

// SetAccents resets the theme and applies the configured accents. Empty
// values keep the defaults. Accepts hex ("#a78bfa") or ANSI ("39") colors.
func SetAccents(primary, secondary string) {
	current = defaultTheme
	if primary != "" {
		current.Primary = lipgloss.Color(primary)
	}
	if secondary != "" {
		current.Secondary = lipgloss.Color(secondary)
	}
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.Text)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.Dim),
			Subtle:  lipgloss.NewStyle().Foreground(t.Faint),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Accent:  lipgloss.NewStyle().Foreground(t.Secondary),
			Success: lipgloss.NewStyle().Foreground(t.Success),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
		}
	}
	return t.styles
}
