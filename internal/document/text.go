package document

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	footnoteZone     = 0.85 // fraction of page height below which small text is a footnote
	footnoteMaxSize  = 9
	headlineMinSize  = 14
	defaultFontColor = "#000000"
)

// Classify returns the block type for text of fontSize whose top edge is at
// y on a page of pageHeight.
func Classify(fontSize, y, pageHeight float64) BlockType {
	if y > pageHeight*footnoteZone && fontSize <= footnoteMaxSize {
		return BlockFootnote
	}
	if fontSize >= headlineMinSize {
		return BlockHeadline
	}
	return BlockBody
}

var (
	reDotRun   = regexp.MustCompile(`\.{2,}`)
	reSpace    = regexp.MustCompile(`\s+`)
	reRomanDot = regexp.MustCompile(`([IVX]+)\.+`)
)

// CleanText removes common extraction artifacts: doubled characters from
// fake-bold rendering, dot leaders, and runs of whitespace.
// Doubled characters are only collapsed when every word of s is doubled,
// so ordinary words like "letter" survive.
func CleanText(s string) string {
	if fakeBold(s) {
		s = collapsePairs(s)
	}
	s = reDotRun.ReplaceAllString(s, ".")
	s = reSpace.ReplaceAllString(s, " ")
	s = reRomanDot.ReplaceAllString(s, "$1.")
	return strings.TrimSpace(s)
}

// collapsePairs turns every pair of identical runes into one rune, scanning
// left to right without overlap ("aab" -> "ab", "aaa" -> "aa").
func collapsePairs(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		out = append(out, r[i])
		if i+1 < len(r) && r[i+1] == r[i] {
			i++
		}
	}
	return string(out)
}

// fakeBold reports whether every word in s has each rune written twice.
func fakeBold(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if len(r)%2 != 0 {
			return false
		}
		for i := 0; i < len(r); i += 2 {
			if r[i] != r[i+1] {
				return false
			}
		}
	}
	return true
}

// ColorString formats an RGB integer as a hex color. Zero is black.
func ColorString(rgb int) string {
	if rgb <= 0 {
		return defaultFontColor
	}
	return fmt.Sprintf("#%06x", rgb&0xffffff)
}

var highlightPalette = []string{
	"#fff176", // light yellow
	"#81c784", // light green
	"#ff8a65", // light red
	"#64b5f6", // light blue
	"#ba68c8", // light purple
	"#4db6ac", // light teal
	"#ff8a80", // light coral
	"#90caf9",
	"#ce93d8",
	"#80cbc4",
}

// HighlightColor returns a background color for the i-th highlighted item.
func HighlightColor(i int) string {
	if i < 0 {
		i = -i
	}
	return highlightPalette[i%len(highlightPalette)]
}
