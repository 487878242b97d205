package render

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Clair de Lune", "Clair de Lune"},
		{"tab kept", "Side A\tTrack 1", "Side A\tTrack 1"},
		{"nul dropped", "Song\x00 A", "Song A"},
		{"escape dropped", "Song\x1b[31m A", "Song[31m A"},
		{"newline dropped", "Song\nA", "SongA"},
		{"invalid utf-8 dropped", "Song\xff A", "Song A"},
		{"c1 control dropped", "Song\u0085 A", "Song A"},
		{"no-break space", "Song\u00a0A", "Song A"},
		{"accents kept", "Café Tacvba", "Café Tacvba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads short title", "Song A", 10, "Song A    "},
		{"exact width", "Song A", 6, "Song A"},
		{"cuts long title", "Bohemian Rhapsody", 8, "Bohemia…"},
		{"empty artist", "", 4, "    "},
		{"zero width", "Song A", 0, ""},
		{"strips control chars first", "So\x00ng", 5, "Song "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.input, tt.width); got != tt.want {
				t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestFit_WideRunes(t *testing.T) {
	got := Fit("夜に駆ける", 7)

	if w := runewidth.StringWidth(got); w != 7 {
		t.Errorf("Fit width = %d, want 7 (%q)", w, got)
	}
}

func TestSpread(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		width       int
		want        string
	}{
		{"header row", " plm  3 songs", "Playlist ", 30, " plm  3 songs        Playlist "},
		{"too narrow keeps one space", "plm", "Repeat", 5, "plm Repeat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spread(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("Spread(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
			}
		})
	}
}

func TestSpread_IgnoresStyling(t *testing.T) {
	left := "\x1b[1mplm\x1b[0m"

	got := Spread(left, "List", 10)

	if w := ansi.StringWidth(got); w != 10 {
		t.Errorf("styled Spread width = %d, want 10 (%q)", w, ansi.Strip(got))
	}
}

func TestRuleAndBlank(t *testing.T) {
	if got := Rule(4); got != "────" {
		t.Errorf("Rule(4) = %q", got)
	}
	if got := Blank(3); got != "   " {
		t.Errorf("Blank(3) = %q", got)
	}
	if Rule(-1) != "" || Blank(-1) != "" {
		t.Error("negative widths should give empty strings")
	}
}
