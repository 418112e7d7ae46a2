package testutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello", "hello"},
		{"color codes", "\x1b[31mred\x1b[0m", "red"},
		{"multiple params", "\x1b[1;38;5;141mbold\x1b[0m text", "bold text"},
		{"zone markers", "\x1b[1000zpane\x1b[1001z", "pane"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.expected {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripANSI_LipglossOutput(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Page 1")
	if got := StripANSI(styled); got != "Page 1" {
		t.Errorf("StripANSI(styled) = %q, want %q", got, "Page 1")
	}
}

func TestFindLine(t *testing.T) {
	output := "first\n\x1b[31msecond line\x1b[0m\nthird"

	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine = %q, want %q", got, "second line")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q, want empty", got)
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine(third) = false, want true")
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\nb\n\n  \n")
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("SplitLines = %q, want [a b]", lines)
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31m日本\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestKey(t *testing.T) {
	for _, s := range []string{"j", "G", "tab", "enter", "ctrl+d", "pgdown", " ", "esc", "/"} {
		if got := Key(s).String(); got != s {
			t.Errorf("Key(%q).String() = %q", s, got)
		}
	}
}
