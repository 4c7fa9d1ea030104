package ahocorasick

import (
	"errors"

	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
)

// ErrMultiRuneCell is returned when a grid cell is empty or holds more than
// one rune. Line text would then no longer map one rune to one cell, and a
// match could straddle token boundaries.
var ErrMultiRuneCell = errors.New("automaton engine needs exactly one rune per cell")

// Engine implements ports.Engine by scanning whole grid lines.
type Engine struct{}

var _ ports.Engine = Engine{}

// Name returns "automaton".
func (Engine) Name() string { return "automaton" }

// Search counts every word along every enabled direction.
// Results match grid.Search for all grids whose cells are single runes.
func (Engine) Search(words []string, g *grid.Grid, dirs grid.DirectionSet) ([]grid.Result, error) {
	if err := grid.ValidateWords(words); err != nil {
		return nil, err
	}
	if !g.SingleRune() {
		return nil, ErrMultiRuneCell
	}

	// Duplicate words share one pattern.
	slot := make(map[string]int, len(words))
	var patterns []string
	for _, w := range words {
		if _, ok := slot[w]; !ok {
			slot[w] = len(patterns)
			patterns = append(patterns, w)
		}
	}
	if len(patterns) == 0 || g.Empty() || dirs.Len() == 0 {
		return nil, nil
	}

	scanner := NewTextScanner(patterns)
	counts := make([]int, len(patterns))
	for _, d := range dirs.Directions() {
		for _, line := range g.Lines(d) {
			scanner.CountInto(counts, line.Text)
		}
	}

	var results []grid.Result
	for _, w := range words {
		if n := counts[slot[w]]; n > 0 {
			results = append(results, grid.Result{Word: w, Count: n})
		}
	}
	return results, nil
}
