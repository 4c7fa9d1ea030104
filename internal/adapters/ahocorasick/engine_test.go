package ahocorasick

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Automaton engine: one overlapping scan per grid line
// Expectation: identical output to the stride engine on single-rune grids
// =============================================================================

func mustGrid(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromStrings(lines...)
	require.NoError(t, err)
	return g
}

func TestTextScanner_CountIntoSharedPrefix(t *testing.T) {
	s := NewTextScanner([]string{"log", "login"})
	counts := make([]int, 2)
	s.CountInto(counts, "login page")
	assert.Equal(t, []int{1, 1}, counts)
}

func TestTextScanner_CountInto(t *testing.T) {
	s := NewTextScanner([]string{"AA", "A"})
	counts := make([]int, 2)
	s.CountInto(counts, "AAA")
	assert.Equal(t, []int{2, 3}, counts)
}

func TestEngine_Name(t *testing.T) {
	assert.Equal(t, "automaton", Engine{}.Name())
}

func TestEngine_DiagonalCorner(t *testing.T) {
	g := mustGrid(t, "AB", "CD")
	dirs, err := grid.ParseDirections("y")
	require.NoError(t, err)

	res, err := Engine{}.Search([]string{"AD", "BC"}, g, dirs)
	require.NoError(t, err)
	assert.Equal(t, []grid.Result{{Word: "AD", Count: 1}}, res)
}

func TestEngine_SingleLetterAllDirections(t *testing.T) {
	g := mustGrid(t, "AB", "BA")
	res, err := Engine{}.Search([]string{"A"}, g, grid.AllDirections)
	require.NoError(t, err)
	assert.Equal(t, []grid.Result{{Word: "A", Count: 16}}, res)
}

func TestEngine_DuplicateWords(t *testing.T) {
	g := mustGrid(t, "CAT")
	res, err := Engine{}.Search([]string{"CAT", "DOG", "CAT"}, g, grid.AllDirections)
	require.NoError(t, err)
	assert.Equal(t, []grid.Result{{"CAT", 1}, {"CAT", 1}}, res)
}

func TestEngine_MultiRuneCellRejected(t *testing.T) {
	g := grid.MustNew([][]string{{"C", "AT"}})
	_, err := Engine{}.Search([]string{"CAT"}, g, grid.AllDirections)
	assert.ErrorIs(t, err, ErrMultiRuneCell)
}

func TestEngine_EmptyWordRejected(t *testing.T) {
	_, err := Engine{}.Search([]string{""}, mustGrid(t, "A"), grid.AllDirections)
	assert.ErrorIs(t, err, grid.ErrEmptyWord)
}

func TestEngine_EmptyInputs(t *testing.T) {
	res, err := Engine{}.Search(nil, mustGrid(t, "A"), grid.AllDirections)
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = Engine{}.Search([]string{"A"}, grid.MustNew(nil), grid.AllDirections)
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = Engine{}.Search([]string{"A"}, mustGrid(t, "A"), 0)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestEngine_UnicodeCells(t *testing.T) {
	g := mustGrid(t, "ÅÄÖ", "XÄX", "XÖX")
	res, err := Engine{}.Search([]string{"ÅÄÖ", "ÄÄÖ"}, g, grid.AllDirections)
	require.NoError(t, err)

	want, err := grid.Search([]string{"ÅÄÖ", "ÄÄÖ"}, g, grid.AllDirections)
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestEngine_ParityWithStride(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const alphabet = "ABC"
	for trial := 0; trial < 40; trial++ {
		rows, cols := 1+r.Intn(8), 1+r.Intn(8)
		lines := make([]string, rows)
		for i := range lines {
			var sb strings.Builder
			for j := 0; j < cols; j++ {
				sb.WriteByte(alphabet[r.Intn(len(alphabet))])
			}
			lines[i] = sb.String()
		}
		g := mustGrid(t, lines...)

		words := make([]string, 15)
		for i := range words {
			b := make([]byte, 1+r.Intn(4))
			for j := range b {
				b[j] = alphabet[r.Intn(len(alphabet))]
			}
			words[i] = string(b)
		}
		dirs := grid.DirectionSet(r.Intn(int(grid.AllDirections) + 1))

		want, err := grid.Search(words, g, dirs)
		require.NoError(t, err)
		got, err := Engine{}.Search(words, g, dirs)
		require.NoError(t, err)
		assert.Equal(t, want, got, "trial %d dirs %q\n%s", trial, dirs, g)
	}
}
