// Package scrollsync maps the scroll position of one pane onto another.
//
// The page pane and the text pane show the same document at different
// heights. A scroll in one pane is converted into a fraction of that pane's
// height and applied to the other pane, so both panes show roughly the same
// part of the document.
package scrollsync

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilPane is returned when a pane handle is missing.
	ErrNilPane = errors.New("scrollsync: nil pane")
	// ErrUnknownSource is returned for a source that names neither pane.
	ErrUnknownSource = errors.New("scrollsync: unknown source")
	// ErrNoScrollRange is returned when the source pane has nothing to
	// scroll, which would otherwise produce a non-finite offset.
	ErrNoScrollRange = errors.New("scrollsync: source pane has no scroll range")
)

// Pane is a scrollable region whose offset can be read and written.
type Pane interface {
	// ScrollOffset returns the distance from the top of the content to the
	// top of the visible area.
	ScrollOffset() float64
	// SetScrollOffset moves the visible area. Implementations may clamp.
	SetScrollOffset(offset float64)
	// ContentHeight returns the total height of the content, including the
	// part that is off-screen.
	ContentHeight() float64
	// VisibleHeight returns the height of the visible area.
	VisibleHeight() float64
}

// Source names the pane that emitted a scroll event.
type Source int

const (
	SourcePage Source = iota
	SourceText
)

func (s Source) String() string {
	switch s {
	case SourcePage:
		return "page"
	case SourceText:
		return "text"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Other returns the pane a scroll from s is propagated to.
func (s Source) Other() Source {
	if s == SourcePage {
		return SourceText
	}
	return SourcePage
}

// ParseSource accepts "page" (or the legacy "pdf") and "text".
func ParseSource(s string) (Source, error) {
	switch s {
	case "page", "pdf":
		return SourcePage, nil
	case "text":
		return SourceText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// Denominator selects the height a scroll offset is divided by.
type Denominator int

const (
	// DenominatorRange divides by the scrollable range (content minus
	// visible height). Both panes reach their end at the same time.
	DenominatorRange Denominator = iota
	// DenominatorContent divides by the full content height. Panes with a
	// different visible-to-content ratio drift apart near the end.
	DenominatorContent
)

func (d Denominator) String() string {
	if d == DenominatorContent {
		return "content"
	}
	return "range"
}

// ParseDenominator accepts "range" and "content". Empty means range.
func ParseDenominator(s string) (Denominator, error) {
	switch s {
	case "", "range":
		return DenominatorRange, nil
	case "content":
		return DenominatorContent, nil
	default:
		return 0, fmt.Errorf("scrollsync: unknown denominator %q", s)
	}
}

// Height returns the denominator height of p. It is never negative.
func (d Denominator) Height(p Pane) float64 {
	h := p.ContentHeight()
	if d == DenominatorRange {
		h -= p.VisibleHeight()
	}
	return max(h, 0)
}

// ScrollState is a snapshot of one pane.
type ScrollState struct {
	Offset  float64
	Content float64
	Visible float64
}

// Snapshot reads the current state of p.
func Snapshot(p Pane) ScrollState {
	return ScrollState{
		Offset:  p.ScrollOffset(),
		Content: p.ContentHeight(),
		Visible: p.VisibleHeight(),
	}
}

// Fraction returns how far down the pane is scrolled, in [0, 1].
// A pane with nothing to scroll reports 0.
func (s ScrollState) Fraction(d Denominator) float64 {
	h := s.Content
	if d == DenominatorRange {
		h -= s.Visible
	}
	if h <= 0 {
		return 0
	}
	return math.Min(math.Max(s.Offset/h, 0), 1)
}

// Offset maps offset, measured against srcDenom, onto a target whose
// denominator is dstDenom. The result is not clamped.
func Offset(offset, srcDenom, dstDenom float64) (float64, error) {
	if srcDenom <= 0 || math.IsNaN(srcDenom) || math.IsInf(srcDenom, 0) {
		return 0, ErrNoScrollRange
	}
	out := dstDenom * offset / srcDenom
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, ErrNoScrollRange
	}
	return out, nil
}

// Sync applies the scroll position of the pane named by src to the other
// pane. Only the other pane is written; the source pane is never touched.
// On error no pane is modified.
func Sync(src Source, page, text Pane, d Denominator) error {
	from, to, err := route(src, page, text)
	if err != nil {
		return err
	}
	offset, err := Offset(from.ScrollOffset(), d.Height(from), d.Height(to))
	if err != nil {
		return err
	}
	to.SetScrollOffset(offset)
	return nil
}

func route(src Source, page, text Pane) (from, to Pane, err error) {
	if page == nil || text == nil {
		return nil, nil, ErrNilPane
	}
	switch src {
	case SourcePage:
		return page, text, nil
	case SourceText:
		return text, page, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownSource, src)
	}
}
