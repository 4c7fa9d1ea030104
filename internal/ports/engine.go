package ports

import "github.com/corey/wordgrid/internal/domain/grid"

// Engine counts word occurrences in a grid. Implementations must return the
// same results as grid.Search for every input they accept: (word, count) for
// each word with a nonzero count, in word-list order.
type Engine interface {
	// Name identifies the engine in logs and run history ("stride", "automaton").
	Name() string

	// Search runs one search. Returns an error wrapping grid.ErrEmptyWord for
	// an empty word, or an engine-specific error when the input is outside
	// what the engine supports.
	Search(words []string, g *grid.Grid, dirs grid.DirectionSet) ([]grid.Result, error)
}
