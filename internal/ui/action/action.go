// Package action carries events from UI components up to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an event raised by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is what the app receives when a component raises an action.
type Msg struct {
	Source string
	Action Action
}

// Emitter returns a constructor of commands that deliver actions from source.
func Emitter(source string) func(Action) tea.Cmd {
	return func(a Action) tea.Cmd {
		return func() tea.Msg { return Msg{Source: source, Action: a} }
	}
}
