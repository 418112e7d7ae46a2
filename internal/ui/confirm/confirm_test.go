package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm() *Model {
	m := New()
	m.SetSize(80, 24)
	m.Show("Delete document", "Remove report.pdf?", testContext)
	return &m
}

func resultOf(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	actionMsg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatal("expected action.Msg")
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestConfirm()

			_, cmd := m.Update(testutil.Key(tt.key))

			result := resultOf(t, cmd)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if m.Active() {
				t.Error("popup should close after answering")
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m := newTestConfirm()

	_, cmd := m.Update(testutil.Key("x"))

	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
	if !m.Active() {
		t.Error("popup should stay open")
	}
}

func TestInactiveIgnoresKeys(t *testing.T) {
	m := New()

	if _, cmd := m.Update(testutil.Key("y")); cmd != nil {
		t.Error("inactive popup should not answer")
	}
	if m.View() != "" {
		t.Error("inactive popup should render nothing")
	}
}

func TestView(t *testing.T) {
	m := newTestConfirm()

	view := m.View()
	if !testutil.ContainsLine(view, "Delete document") {
		t.Error("view should contain the title")
	}
	if !testutil.ContainsLine(view, "Remove report.pdf?") {
		t.Error("view should contain the message")
	}
}
