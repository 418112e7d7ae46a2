package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"unicode kept", "café 日本", "café 日本"},
		{"control removed", "a\x07b\x1bc", "abc"},
		{"newline and tab become spaces", "a\nb\tc", "a b c"},
		{"nbsp", "a\u00a0b", "a b"},
		{"soft hyphen", "hy\u00adphen", "hyphen"},
		{"invalid byte", "a\xffb", "ab"},
		{"c1 control", "a\u0085b", "ab"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 6, "abc   "},
		{"abcdefgh", 5, "abcd…"},
		{"日本", 5, "日本 "},
	}

	for _, tt := range tests {
		got := Fit(tt.input, tt.width)
		if got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
		if w := lipgloss.Width(got); w != tt.width {
			t.Errorf("Fit(%q, %d) width = %d", tt.input, tt.width, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row (overflow) = %q, want single space gap", got)
	}
}
