package app

import (
	"github.com/corey/wordgrid/internal/domain/grid"
	"golang.org/x/text/cases"
)

// foldInputs returns case-folded copies of words and g using Unicode full
// case folding. Words "Straße" and "STRASSE" both fold to "strasse". Cells
// fold whole: a "ß" cell becomes the single cell "ss", which still counts as
// one cell of the walk, so it never lines up with a folded word.
func foldInputs(words []string, g *grid.Grid) ([]string, *grid.Grid) {
	// cases.Caser keeps state; one per call keeps this safe for concurrent use.
	c := cases.Fold()
	folded := make([]string, len(words))
	for i, w := range words {
		folded[i] = c.String(w)
	}
	return folded, g.Map(c.String)
}

// unfoldResults maps results computed on folded words back to the original
// spellings. results must be an ordered subsequence of folded.
func unfoldResults(original, folded []string, results []grid.Result) []grid.Result {
	if len(results) == 0 {
		return results
	}
	out := make([]grid.Result, 0, len(results))
	j := 0
	for i, fw := range folded {
		if j < len(results) && results[j].Word == fw {
			out = append(out, grid.Result{Word: original[i], Count: results[j].Count})
			j++
		}
	}
	return out
}
