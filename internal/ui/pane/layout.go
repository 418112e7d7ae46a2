package pane

import "sort"

// Layout is rendered pane content with the line each page starts at.
type Layout struct {
	Lines      []string
	Pages      []int // page numbers, in display order
	PageStarts []int // line index of each page, parallel to Pages
}

// AddPage records that page number starts at the next line.
func (l *Layout) AddPage(number int) {
	l.Pages = append(l.Pages, number)
	l.PageStarts = append(l.PageStarts, len(l.Lines))
}

// PageAt returns the number of the page shown at line, or 0 when the layout
// has no pages.
func (l Layout) PageAt(line int) int {
	if len(l.Pages) == 0 {
		return 0
	}
	i := sort.SearchInts(l.PageStarts, line+1) - 1
	return l.Pages[max(i, 0)]
}

// StartOf returns the first line of page number.
func (l Layout) StartOf(number int) (int, bool) {
	for i, n := range l.Pages {
		if n == number {
			return l.PageStarts[i], true
		}
	}
	return 0, false
}

// Neighbor returns the page number delta pages away from number, clamped
// to the first and last page.
func (l Layout) Neighbor(number, delta int) int {
	if len(l.Pages) == 0 {
		return 0
	}
	i := 0
	for j, n := range l.Pages {
		if n == number {
			i = j
			break
		}
	}
	i = min(max(i+delta, 0), len(l.Pages)-1)
	return l.Pages[i]
}
