// Package statusbar renders the one-line status line at the bottom of the
// screen.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Height is the fixed height of the status bar.
const Height = 1

// Level selects the color of the message.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Render draws message on the left and hint on the right of a line of
// width cells.
func Render(message string, level Level, hint string, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	msgStyle := s.Muted
	switch level {
	case LevelSuccess:
		msgStyle = s.Success
	case LevelError:
		msgStyle = s.Error
	}

	hint = render.Truncate(hint, max(width/2, 1))
	left := msgStyle.Render(render.Truncate(message, max(width-lipgloss.Width(hint)-3, 1)))
	return render.Row(" "+left, s.Subtle.Render(hint)+" ", width)
}
