// Package textview lays out the extracted text of a document as wrapped,
// styled paragraphs grouped by page.
package textview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/ui/pane"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

const footnoteIndent = "  "

// Options controls text rendering.
type Options struct {
	Highlight bool // give every block the same background as in the page pane
}

// Render lays out pages for a pane of the given width.
func Render(pages []document.Page, width int, opts Options) pane.Layout {
	var l pane.Layout
	if width <= 0 {
		return l
	}
	s := styles.T().S()

	blockIdx := 0
	for i, p := range pages {
		if i > 0 {
			l.Lines = append(l.Lines, "")
		}
		l.AddPage(p.Number)
		l.Lines = append(l.Lines, s.PageHead.Render(render.Truncate(fmt.Sprintf("── Page %d ──", p.Number), width)))

		for j, b := range p.Blocks {
			if j > 0 {
				l.Lines = append(l.Lines, "")
			}
			l.Lines = append(l.Lines, block(b, blockIdx+j, width, opts)...)
		}
		if len(p.Blocks) == 0 {
			l.Lines = append(l.Lines, s.Subtle.Render("(no text)"))
		}
		blockIdx += len(p.Blocks)
	}
	return l
}

func block(b document.Block, idx, width int, opts Options) []string {
	indent := ""
	if b.Type == document.BlockFootnote {
		indent = footnoteIndent
	}
	limit := max(width-len(indent), 1)

	st := blockStyle(b.Type, idx, opts)
	text := strings.Split(ansi.Wrap(render.Sanitize(b.Text), limit, ""), "\n")
	lines := make([]string, 0, len(text))
	for _, t := range text {
		lines = append(lines, indent+st.Render(strings.TrimRight(t, " ")))
	}
	return lines
}

func blockStyle(t document.BlockType, idx int, opts Options) lipgloss.Style {
	th := styles.T()
	if opts.Highlight {
		return th.Highlight(document.HighlightColor(idx))
	}
	switch t {
	case document.BlockHeadline:
		return th.S().Headline
	case document.BlockFootnote:
		return th.S().Footnote
	default:
		return th.S().Base
	}
}
