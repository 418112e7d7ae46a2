package doclist

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/llehouerou/folio/internal/document"
)

// Match returns the indexes of docs whose file name matches query, best
// match first. Substring matches rank ahead of fuzzy ones; a fuzzy match
// allows one edit per three characters of query. An empty query matches
// everything in order.
func Match(query string, docs []document.Document) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		idx := make([]int, len(docs))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	type scored struct{ idx, score int }
	var hits []scored
	allowed := utf8.RuneCountInString(query) / 3
	for i, d := range docs {
		name := strings.ToLower(d.FileName)
		if strings.Contains(name, query) {
			hits = append(hits, scored{i, 0})
			continue
		}
		if dist := bestDistance(query, name); dist <= allowed {
			hits = append(hits, scored{i, 1 + dist})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return cmp.Compare(a.score, b.score) })

	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.idx
	}
	return out
}

// bestDistance returns the smallest edit distance between query and any
// window of name with the same rune length.
func bestDistance(query, name string) int {
	q := []rune(query)
	n := []rune(name)
	if len(n) <= len(q) {
		return levenshtein.ComputeDistance(query, name)
	}
	best := len(q)
	for i := 0; i+len(q) <= len(n); i++ {
		best = min(best, levenshtein.ComputeDistance(query, string(n[i:i+len(q)])))
		if best == 0 {
			break
		}
	}
	return best
}
