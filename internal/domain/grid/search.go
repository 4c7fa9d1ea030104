package grid

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyWord is returned when the word list contains an empty word.
var ErrEmptyWord = errors.New("empty word")

// Result is the total occurrence count of one word.
type Result struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// String renders the result as a "word,count" output line.
func (r Result) String() string {
	return r.Word + "," + strconv.Itoa(r.Count)
}

// Occurrence is one full match of a word.
type Occurrence struct {
	Word  string    `json:"word"`
	Start Coord     `json:"start"`
	Dir   Direction `json:"dir"`
}

// Searcher runs searches. Workers > 1 spreads words across that many
// goroutines; results are identical to the sequential run.
type Searcher struct {
	Workers int
}

// Search counts every word along every enabled direction with a sequential Searcher.
func Search(words []string, g *Grid, dirs DirectionSet) ([]Result, error) {
	return Searcher{}.Search(words, g, dirs)
}

// Search returns (word, count) for every word with a nonzero count, in word
// list order. Duplicate words are reported once per list entry.
func (s Searcher) Search(words []string, g *Grid, dirs DirectionSet) ([]Result, error) {
	if err := ValidateWords(words); err != nil {
		return nil, err
	}
	idx := BuildCoordIndex(words, g)

	counts := make([]int, len(words))
	if s.Workers <= 1 || len(words) < 2 {
		for i, w := range words {
			counts[i] = countWord(idx, g, dirs, w)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(s.Workers)
		for i, w := range words {
			eg.Go(func() error {
				counts[i] = countWord(idx, g, dirs, w)
				return nil
			})
		}
		_ = eg.Wait() // workers never fail
	}

	var results []Result
	for i, w := range words {
		if counts[i] > 0 {
			results = append(results, Result{Word: w, Count: counts[i]})
		}
	}
	return results, nil
}

func countWord(idx CoordIndex, g *Grid, dirs DirectionSet, word string) int {
	starts := idx.Starts(word)
	if len(starts) == 0 {
		return 0
	}
	total := 0
	for _, d := range Directions {
		if dirs.Has(d) {
			total += CountOccurrences(starts, g, d.Stride(), word)
		}
	}
	return total
}

// Locate returns every occurrence of every word, ordered by word list order,
// then catalog direction, then start cell row-major.
func Locate(words []string, g *Grid, dirs DirectionSet) ([]Occurrence, error) {
	groups, err := LocateEach(words, g, dirs)
	if err != nil {
		return nil, err
	}
	var out []Occurrence
	for _, occ := range groups {
		out = append(out, occ...)
	}
	return out, nil
}

// LocateEach is Locate grouped by word: groups[i] holds the occurrences of
// words[i], nil when it does not occur.
func LocateEach(words []string, g *Grid, dirs DirectionSet) ([][]Occurrence, error) {
	if err := ValidateWords(words); err != nil {
		return nil, err
	}
	idx := BuildCoordIndex(words, g)

	groups := make([][]Occurrence, len(words))
	for i, w := range words {
		starts := idx.Starts(w)
		for _, d := range Directions {
			if !dirs.Has(d) {
				continue
			}
			for _, c := range matchingStarts(starts, g, d.Stride(), w) {
				groups[i] = append(groups[i], Occurrence{Word: w, Start: c, Dir: d})
			}
		}
	}
	return groups, nil
}

// ValidateWords rejects empty words.
func ValidateWords(words []string) error {
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("word %d: %w", i+1, ErrEmptyWord)
		}
	}
	return nil
}

// Name returns "stride".
func (Searcher) Name() string { return "stride" }
