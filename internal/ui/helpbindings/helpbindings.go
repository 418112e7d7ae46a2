// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Close is raised when the user dismisses the help.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }

var emit = action.Emitter("helpbindings")

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":    "Global",
	"documents": "Document List",
	"viewer":    "Viewer",
}

// chromeHeight is the space taken by the title, footer and blank lines.
const chromeHeight = 4

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display, in keymap order.
func (m *Model) SetContexts(contexts []string) {
	var bindings []keymap.Binding
	for _, ctx := range keymap.Contexts {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	m.lines = buildLines(bindings)
	m.offset = 0
}

func buildLines(bindings []keymap.Binding) []string {
	t := styles.T()
	keyStyle := t.S().Title.Foreground(t.Primary)
	headerStyle := t.S().PageHead.Bold(true)

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, len(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, headerStyle.Render(label))
			current = b.Context
		}
		lines = append(lines, keyStyle.Render(render.Fit(keyLabel(b), keyWidth))+"  "+t.S().Base.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, emit(Close{})
	case "j", "down":
		m.offset = min(m.offset+1, m.maxOffset())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	end := min(m.offset+m.visibleHeight(), len(m.lines))

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.lines[m.offset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(footer))
	return b.String()
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chromeHeight, 1)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
