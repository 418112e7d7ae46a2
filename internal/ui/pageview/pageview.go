// Package pageview draws document pages as terminal cell grids, placing
// each text block where its bounding box sits on the page.
package pageview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/ui/pane"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// DefaultScale is the number of page points per terminal column.
const DefaultScale = 6.0

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Options controls page rendering.
type Options struct {
	Scale     float64 // points per column; <= 0 uses DefaultScale
	Highlight bool    // give every block its own background
}

// cell is one grid position. A zero rune marks the right half of a wide rune.
type cell struct {
	r     rune
	block int // index into the document's block sequence, -1 for paper
}

// Render lays out pages for a pane of the given width. Pages narrower than
// the pane are centered; wider pages are scaled down to fit.
func Render(pages []document.Page, width int, opts Options) pane.Layout {
	var l pane.Layout
	if width <= 0 {
		return l
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	blockIdx := 0
	for _, p := range pages {
		l.AddPage(p.Number)
		l.Lines = append(l.Lines, header(p.Number, len(pages), width))

		grid, cols := layoutPage(p, width, scale, blockIdx)
		pad := strings.Repeat(" ", (width-cols)/2)
		for _, row := range grid {
			l.Lines = append(l.Lines, pad+renderRow(row, p.Blocks, blockIdx, opts.Highlight))
		}
		blockIdx += len(p.Blocks)
	}
	return l
}

func header(number, total, width int) string {
	label := fmt.Sprintf(" %d / %d ", number, total)
	fill := max(width-ansi.StringWidth(label), 0)
	left := fill / 2
	return styles.T().S().Subtle.Render(
		strings.Repeat("─", left) + label + strings.Repeat("─", fill-left))
}

// layoutPage places the blocks of p on a grid and returns it with its width.
func layoutPage(p document.Page, width int, scale float64, firstBlock int) ([][]cell, int) {
	pw, ph := pageSize(p)

	colScale := max(scale, pw/float64(width))
	rowScale := colScale * cellAspect
	cols := min(max(int(math.Ceil(pw/colScale)), 1), width)
	rows := max(int(math.Ceil(ph/rowScale)), 1)

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' ', block: -1}
		}
	}

	for i, b := range p.Blocks {
		x0 := clampInt(int(b.BBox.X0/colScale), 0, cols-1)
		y0 := clampInt(int(b.BBox.Y0/rowScale), 0, rows-1)
		x1 := clampInt(int(math.Ceil(b.BBox.X1/colScale)), x0+1, cols)
		y1 := clampInt(int(math.Ceil(b.BBox.Y1/rowScale)), y0+1, rows)

		lines := strings.Split(ansi.Wrap(render.Sanitize(b.Text), x1-x0, ""), "\n")
		for j, line := range lines {
			if y0+j >= y1 {
				break
			}
			place(grid[y0+j], x0, x1, line, firstBlock+i)
		}
	}
	return grid, cols
}

func pageSize(p document.Page) (float64, float64) {
	w, h := p.Width, p.Height
	for _, b := range p.Blocks {
		w = max(w, b.BBox.X1)
		h = max(h, b.BBox.Y1)
	}
	return max(w, 1), max(h, 1)
}

// place writes line into row between columns x0 and x1.
func place(row []cell, x0, x1 int, line string, block int) {
	x := x0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > x1 {
			return
		}
		row[x] = cell{r: r, block: block}
		if w == 2 {
			row[x+1] = cell{block: block}
		}
		x += w
	}
}

func renderRow(row []cell, blocks []document.Block, firstBlock int, highlight bool) string {
	var b strings.Builder
	var run strings.Builder
	current := -2
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(cellStyle(current, blocks, firstBlock, highlight).Render(run.String()))
			run.Reset()
		}
	}
	for _, c := range row {
		if c.block != current {
			flush()
			current = c.block
		}
		if c.r != 0 {
			run.WriteRune(c.r)
		}
	}
	flush()
	return b.String()
}

func cellStyle(block int, blocks []document.Block, firstBlock int, highlight bool) lipgloss.Style {
	t := styles.T()
	paper := lipgloss.NewStyle().Background(t.BgPage)
	if block < 0 {
		return paper
	}
	if highlight {
		return t.Highlight(document.HighlightColor(block))
	}
	var s lipgloss.Style
	switch blocks[block-firstBlock].Type {
	case document.BlockHeadline:
		s = t.S().Headline
	case document.BlockFootnote:
		s = t.S().Footnote
	default:
		s = t.S().Base
	}
	return s.Background(t.BgPage)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
