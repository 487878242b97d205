package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for accents that are not "#rrggbb", such as ANSI
// color numbers, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders bold text shading from the primary to the secondary
// accent, one color per grapheme cluster.
func Gradient(text string) string {
	t := T()
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(text)
	}

	var b strings.Builder
	for i, hex := range blend(len(clusters), t.Primary, t.Secondary) {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(clusters[i]))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blend returns n hex colors from "from" to "to", interpolated in HCL so the
// steps look even.
func blend(n int, from, to lipgloss.Color) []string {
	c1, c2 := toColorful(from), toColorful(to)
	out := make([]string, n)
	for i := range out {
		out[i] = c1.BlendHcl(c2, float64(i)/float64(max(n-1, 1))).Clamped().Hex()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
