// Package styles holds the color palette and the lipgloss styles built on it.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette. Colors are "#rrggbb" so they can be blended.
type Theme struct {
	Primary   lipgloss.Color // focus, headlines
	Secondary lipgloss.Color // page headers, gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	FgOnHigh lipgloss.Color // text over a highlight background

	BgPage   lipgloss.Color // the page area of the page pane
	BgCursor lipgloss.Color // selected list row

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are the text styles derived from a Theme.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Headline lipgloss.Style
	Footnote lipgloss.Style
	PageHead lipgloss.Style
	Cursor   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

var theme = Theme{
	Primary:     "#a78bfa",
	Secondary:   "#f1a208",
	FgBase:      "#c0c0c0",
	FgMuted:     "#808080",
	FgSubtle:    "#585858",
	FgOnHigh:    "#1a1a1a",
	BgPage:      "#222222",
	BgCursor:    "#303030",
	Border:      "#585858",
	BorderFocus: "#a78bfa",
	Success:     "#42b883",
	Error:       "#ff5555",
}

// T returns the application theme.
func T() *Theme {
	return &theme
}

// S returns the styles of t, built on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
		t.styles = Styles{
			Base:     fg(t.FgBase),
			Muted:    fg(t.FgMuted),
			Subtle:   fg(t.FgSubtle),
			Title:    fg(t.FgBase).Bold(true),
			Headline: fg(t.Primary).Bold(true),
			Footnote: fg(t.FgMuted).Italic(true),
			PageHead: fg(t.Secondary),
			Cursor:   fg(t.FgBase).Background(t.BgCursor),
			Success:  fg(t.Success),
			Error:    fg(t.Error),
		}
	})
	return &t.styles
}

// Highlight is the style of a block drawn over the highlight color bg.
func (t *Theme) Highlight(bg string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(t.FgOnHigh)
}
