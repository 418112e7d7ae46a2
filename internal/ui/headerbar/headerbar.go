// Package headerbar renders the one-line view switcher at the top of the
// screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui/styles"
)

// Height is the number of rows the header takes.
const Height = 1

// View modes, one per tab.
const (
	ModeDocuments = "documents"
	ModeViewer    = "viewer"
)

const brand = "folio"

var tabs = []struct {
	key, name, mode string
}{
	{"F1", "Documents", ModeDocuments},
	{"F2", "Viewer", ModeViewer},
}

// Render returns the header for a screen width wide, or "" when the screen
// is too narrow to hold the tabs. docName is appended to the viewer tab.
func Render(currentMode, docName string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	key := t.S().Subtle
	name := t.S().Muted

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := tab.name
		if tab.mode == ModeViewer && docName != "" {
			label += ": " + docName
		}
		if tab.mode == currentMode {
			parts = append(parts, active.Render(tab.key+" "+label))
			continue
		}
		parts = append(parts, key.Render(tab.key)+" "+name.Render(label))
	}
	bar := strings.Join(parts, t.S().Subtle.Render(" │ "))

	// The brand goes on the left when it fits beside the centered tabs.
	barW := lipgloss.Width(bar)
	left := max((width-barW)/2, 0)
	if left >= len(brand)+2 {
		return styles.Gradient(brand) + strings.Repeat(" ", left-len(brand)) + bar
	}
	return strings.Repeat(" ", left) + bar
}
