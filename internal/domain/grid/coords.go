package grid

import "unicode/utf8"

// CoordIndex maps a starting character to every cell holding it, row-major.
// Keys are exactly the first characters of the indexed words.
type CoordIndex map[rune][]Coord

// BuildCoordIndex scans the grid once per distinct first character of words.
// Empty words are ignored.
func BuildCoordIndex(words []string, g *Grid) CoordIndex {
	idx := make(CoordIndex)
	for _, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		if _, ok := idx[first]; ok {
			continue
		}
		idx[first] = g.find(string(first))
	}
	return idx
}

// Starts returns the cells holding the first character of word.
func (idx CoordIndex) Starts(word string) []Coord {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return nil
	}
	return idx[first]
}

func (g *Grid) find(cell string) []Coord {
	var out []Coord
	for r, row := range g.cells {
		for c, v := range row {
			if v == cell {
				out = append(out, Coord{r, c})
			}
		}
	}
	return out
}
