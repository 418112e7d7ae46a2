package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/ui/styles"
)

// Popup is a modal component drawn over the main view. While one is shown
// it receives every key.
type Popup interface {
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 80} // Help
	SizeAuto  = SizeConfig{MaxWidth: 60}                // Confirm
)

// Box wraps content in a rounded border sized by size.
func Box(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(height).
		Render(content)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = lipgloss.Width(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	height = lipgloss.Height(content) + 4
	return min(width, screenW-4), min(height, screenH-2)
}

// Overlay draws box centered on top of base, a width x height screen.
func Overlay(base, box string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	x := max((width-boxW)/2, 0)
	y := max((height-len(boxLines))/2, 0)

	for i, line := range boxLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		baseLines[row] = ansi.Cut(under, 0, x) + line + ansi.Cut(under, x+boxW, width)
	}
	return strings.Join(baseLines, "\n")
}
