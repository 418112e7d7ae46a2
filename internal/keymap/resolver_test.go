package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionToggleSync, []string{"s"}, "Toggle sync", "viewer"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "documents"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "documents"},
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testBindings)

	for key, want := range map[string]Action{
		"q":       ActionQuit,
		"ctrl+c":  ActionQuit,
		"s":       ActionToggleSync,
		"up":      ActionMoveUp,
		"j":       ActionMoveDown,
		"unknown": "",
		"":        "",
	} {
		assert.Equal(t, want, r.Resolve(key), "key %q", key)
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionMoveDown, []string{"j"}, "Move down", "documents"},
		{ActionScrollDown, []string{"j"}, "Scroll down", "viewer"},
	})

	assert.Equal(t, ActionScrollDown, r.Resolve("j"))
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(testBindings)

	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
	assert.Equal(t, []string{"k", "up"}, r.KeysFor(ActionMoveUp))
	assert.Nil(t, r.KeysFor(Action("unknown")))
}

func TestResolver_KeysForSkipsDuplicates(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionDelete, []string{"d", "delete"}, "Delete", "documents"},
		{ActionDelete, []string{"d"}, "Delete", "viewer"},
	})

	assert.Equal(t, []string{"d", "delete"}, r.KeysFor(ActionDelete))
}

func TestFor(t *testing.T) {
	viewer := For("global", "viewer")
	docs := For("global", "documents")

	assert.Equal(t, ActionQuit, viewer.Resolve("q"))
	assert.Equal(t, ActionScrollDown, viewer.Resolve("j"))
	assert.Equal(t, ActionSwitchFocus, viewer.Resolve("tab"))
	assert.Equal(t, ActionMoveDown, docs.Resolve("j"))
	assert.Empty(t, docs.Resolve("tab"))
}

func TestResolver_Hints(t *testing.T) {
	r := For("global", "viewer")

	got := r.Hints(
		Hint{ActionSwitchFocus, "pane"},
		Hint{Action("unbound"), "nothing"},
		Hint{ActionQuit, "quit"},
	)

	assert.Equal(t, "tab pane · q quit", got)
}
