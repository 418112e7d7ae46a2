package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not "#rrggbb", such as ANSI
// palette indexes, which cannot be blended.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text bold, each grapheme colored along a blend from
// Primary to Secondary.
func Gradient(text string) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	t := T()
	ramp := blend(t.Primary, t.Secondary, len(clusters))

	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ramp[i]).Render(c))
	}
	return b.String()
}

// ScrollIndicator renders a track of width cells with a thumb at fraction
// (0 top, 1 bottom). The thumb takes the ramp color of its cell.
func ScrollIndicator(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	thumb := int(fraction*float64(width-1) + 0.5)

	t := T()
	track := lipgloss.NewStyle().Foreground(t.FgSubtle).Render("─")
	color := blend(t.Primary, t.Secondary, width)[thumb]

	return strings.Repeat(track, thumb) +
		lipgloss.NewStyle().Foreground(color).Render("█") +
		strings.Repeat(track, width-thumb-1)
}

// blend returns n colors from "from" to "to", interpolated in HCL space.
func blend(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	c1, c2 := parse(from), parse(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		out[i] = lipgloss.Color(c1.BlendHcl(c2, pos).Clamped().Hex())
	}
	return out
}

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}
