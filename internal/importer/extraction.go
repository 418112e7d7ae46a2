package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/llehouerou/folio/internal/document"
)

// ErrNoPages is returned for an extraction file without pages.
var ErrNoPages = errors.New("extraction has no pages")

// Extraction is the on-disk format written by the text extraction step.
type Extraction struct {
	Ref         string           `json:"ref,omitempty"`
	FilePath    string           `json:"file_path"`
	FileName    string           `json:"file_name,omitempty"`
	Strategy    string           `json:"strategy,omitempty"`
	ProcessedAt time.Time        `json:"processed_at,omitzero"`
	Pages       []ExtractionPage `json:"pages"`
}

// ExtractionPage is one page of an extraction.
type ExtractionPage struct {
	Number int               `json:"number"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Blocks []ExtractionBlock `json:"blocks"`
}

// ExtractionBlock is one text block of an extraction page.
type ExtractionBlock struct {
	Text      string        `json:"text"`
	BBox      document.BBox `json:"bbox"`
	FontSize  float64       `json:"font_size"`
	FontName  string        `json:"font_name"`
	FontColor Color         `json:"font_color"`
	Type      string        `json:"block_type,omitempty"`
}

// Color accepts either a "#rrggbb" string or an RGB integer.
type Color string

func (c *Color) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Color(document.ColorString(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("font_color: %w", err)
	}
	*c = Color(s)
	return nil
}

// Parse decodes an extraction from r.
func Parse(r io.Reader) (*Extraction, error) {
	var e Extraction
	dec := json.NewDecoder(r)
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	if len(e.Pages) == 0 {
		return nil, ErrNoPages
	}
	return &e, nil
}

// Convert turns an extraction into a document and its pages. Block text is
// cleaned, empty blocks are dropped and missing block types are derived
// from font size and position.
func (e *Extraction) Convert(now time.Time) (document.Document, []document.Page) {
	doc := document.Document{
		Ref:         e.Ref,
		FilePath:    e.FilePath,
		FileName:    e.FileName,
		Strategy:    e.Strategy,
		ProcessedAt: e.ProcessedAt,
	}
	if doc.FileName == "" {
		doc.FileName = filepath.Base(doc.FilePath)
	}
	if doc.Strategy == "" {
		doc.Strategy = "dict"
	}
	if doc.ProcessedAt.IsZero() {
		doc.ProcessedAt = now
	}

	pages := make([]document.Page, 0, len(e.Pages))
	for i, ep := range e.Pages {
		number := ep.Number
		if number <= 0 {
			number = i + 1
		}
		page := document.Page{Number: number, Width: ep.Width, Height: ep.Height}
		for _, eb := range ep.Blocks {
			text := document.CleanText(eb.Text)
			if text == "" {
				continue
			}
			blockType := document.BlockType(strings.ToLower(eb.Type))
			if !blockType.Valid() {
				blockType = document.Classify(eb.FontSize, eb.BBox.Y0, ep.Height)
			}
			color := string(eb.FontColor)
			if color == "" {
				color = document.ColorString(0)
			}
			page.Blocks = append(page.Blocks, document.Block{
				Page:      number,
				Text:      text,
				BBox:      eb.BBox,
				FontSize:  eb.FontSize,
				FontName:  eb.FontName,
				FontColor: color,
				Type:      blockType,
			})
			page.Width = max(page.Width, eb.BBox.X1)
			page.Height = max(page.Height, eb.BBox.Y1)
		}
		document.SortBlocks(page.Blocks)
		pages = append(pages, page)
	}
	return doc, pages
}
