package grid

import (
	"strings"
	"unicode/utf8"
)

// CountOccurrences tests each start for a full match of word along s and
// returns the number of matches. A start whose last cell would fall outside
// the grid is skipped, never clamped or wrapped.
func CountOccurrences(starts []Coord, g *Grid, s Stride, word string) int {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return 0
	}
	count := 0
	for _, start := range starts {
		if matchAt(g, start, s, n, word) {
			count++
		}
	}
	return count
}

// matchingStarts is CountOccurrences returning the matching starts.
func matchingStarts(starts []Coord, g *Grid, s Stride, word string) []Coord {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return nil
	}
	var out []Coord
	for _, start := range starts {
		if matchAt(g, start, s, n, word) {
			out = append(out, start)
		}
	}
	return out
}

// matchAt walks n cells from start and reports whether their concatenation
// equals word.
func matchAt(g *Grid, start Coord, s Stride, n int, word string) bool {
	if !g.Contains(start) || !g.Contains(start.Step(s, n-1)) {
		return false
	}
	rest := word
	p := start
	for i := 0; i < n; i++ {
		cell := g.At(p)
		if !strings.HasPrefix(rest, cell) {
			return false
		}
		rest = rest[len(cell):]
		p = p.Step(s, 1)
	}
	return rest == ""
}
