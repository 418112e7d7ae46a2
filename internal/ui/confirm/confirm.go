// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Result is raised once the user answers. Context is the value given to Show.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }

var emit = action.Emitter("confirm")

var answers = map[string]bool{
	"enter": true, "y": true, "Y": true,
	"esc": false, "n": false, "N": false, "q": false,
}

// Model is a yes/no question. It is inactive until Show is called.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New returns an inactive confirmation.
func New() Model {
	return Model{}
}

// Show asks the question. context comes back in the Result.
func (m *Model) Show(title, message string, context any) {
	m.title, m.message, m.context = title, message, context
	m.active = true
}

// Active reports whether a question is waiting for an answer.
func (m Model) Active() bool {
	return m.active
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}
	confirmed, known := answers[key.String()]
	if !known {
		return m, nil
	}
	m.active = false
	return m, emit(Result{Confirmed: confirmed, Context: m.context})
}

func (m *Model) View() string {
	if !m.active {
		return ""
	}
	t := styles.T()
	return t.S().Title.Foreground(t.Primary).Render(m.title) + "\n\n" +
		t.S().Base.Render(m.message) + "\n\n" +
		t.S().Subtle.Render("enter/y confirm · esc/n cancel")
}
