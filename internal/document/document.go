// Package document defines extracted documents and their text blocks.
package document

import (
	"cmp"
	"slices"
	"time"
)

// BlockType classifies a text block by its role on the page.
type BlockType string

const (
	BlockBody     BlockType = "body"
	BlockHeadline BlockType = "headline"
	BlockFootnote BlockType = "footnote"
)

// Valid reports whether t is a known block type.
func (t BlockType) Valid() bool {
	switch t {
	case BlockBody, BlockHeadline, BlockFootnote:
		return true
	}
	return false
}

// Document is a processed source file.
type Document struct {
	ID          int64
	Ref         string // stable UUID, survives re-imports
	FilePath    string
	FileName    string
	Strategy    string // extraction strategy used
	ProcessedAt time.Time
	PageCount   int
}

// BBox is a rectangle in page coordinates (points, origin top-left).
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Block is one text block extracted from a page.
type Block struct {
	ID         int64
	DocumentID int64
	Page       int
	Text       string
	BBox       BBox
	FontSize   float64
	FontName   string
	FontColor  string
	Type       BlockType
}

// Page is one page of a document with its blocks in reading order.
type Page struct {
	Number int
	Width  float64
	Height float64
	Blocks []Block
}

// SortBlocks orders blocks by page, then top to bottom, then left to right.
func SortBlocks(blocks []Block) {
	slices.SortStableFunc(blocks, func(a, b Block) int {
		return cmp.Or(
			cmp.Compare(a.Page, b.Page),
			cmp.Compare(a.BBox.Y0, b.BBox.Y0),
			cmp.Compare(a.BBox.X0, b.BBox.X0),
		)
	})
}

// GroupPages splits blocks into pages ordered by number. When dims has an
// entry for a page number it is used for the page size, and the page is
// kept even without blocks; otherwise the size is the extent of the page's
// blocks.
func GroupPages(blocks []Block, dims map[int]BBox) []Page {
	sorted := slices.Clone(blocks)
	SortBlocks(sorted)

	var pages []Page
	for _, b := range sorted {
		if len(pages) == 0 || pages[len(pages)-1].Number != b.Page {
			pages = append(pages, Page{Number: b.Page})
		}
		p := &pages[len(pages)-1]
		p.Blocks = append(p.Blocks, b)
		p.Width = max(p.Width, b.BBox.X1)
		p.Height = max(p.Height, b.BBox.Y1)
	}
	seen := make(map[int]bool, len(pages))
	for i := range pages {
		seen[pages[i].Number] = true
		if d, ok := dims[pages[i].Number]; ok && d.Width() > 0 && d.Height() > 0 {
			pages[i].Width = d.Width()
			pages[i].Height = d.Height()
		}
	}
	for n, d := range dims {
		if !seen[n] {
			pages = append(pages, Page{Number: n, Width: d.Width(), Height: d.Height()})
		}
	}
	slices.SortFunc(pages, func(a, b Page) int { return cmp.Compare(a.Number, b.Number) })
	return pages
}
