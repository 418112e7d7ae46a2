package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PanelStyle is the rounded border of a panel, lit when focused.
func PanelStyle(focused bool) lipgloss.Style {
	border := theme.Border
	if focused {
		border = theme.BorderFocus
	}
	return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(border)
}

// Panel draws a bordered box of exactly width x height cells holding a
// title line followed by body. Body lines are truncated and padded.
func Panel(title, body string, width, height int, focused bool) string {
	innerW := max(width-2, 0)
	innerH := max(height-2, 0)
	if innerW == 0 || innerH == 0 {
		return ""
	}

	t := T()
	titleStyle := t.S().Muted
	if focused {
		titleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, fit(titleStyle.Render(ansi.Truncate(title, innerW, "…")), innerW))
	for line := range strings.SplitSeq(body, "\n") {
		if len(lines) == innerH {
			break
		}
		lines = append(lines, fit(line, innerW))
	}
	for len(lines) < innerH {
		lines = append(lines, strings.Repeat(" ", innerW))
	}

	return PanelStyle(focused).Render(strings.Join(lines, "\n"))
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
