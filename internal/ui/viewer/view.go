package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui/styles"
)

// View renders both panes.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	if !m.HasDocument() {
		body := styles.T().S().Muted.Render("No document open. Press F1 to pick one.")
		return styles.Panel("Viewer", body, m.Width(), m.Height(), m.IsFocused())
	}
	if m.stacked {
		return lipgloss.JoinVertical(lipgloss.Left, m.page.View(), m.text.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.page.View(), m.text.View())
}
