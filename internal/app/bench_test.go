package app

import (
	"math/rand"
	"testing"

	"github.com/corey/wordgrid/internal/domain/grid"
)

// =============================================================================
// Engine benchmarks: stride (sequential and parallel) vs automaton on one
// 200x200 grid with 500 words. Words are cut from the grid so most match.
// =============================================================================

func benchInputs(b *testing.B) ([]string, *grid.Grid) {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	const size = 200
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	rows := make([][]string, size)
	for r := range rows {
		rows[r] = make([]string, size)
		for c := range rows[r] {
			rows[r][c] = string(alphabet[rng.Intn(len(alphabet))])
		}
	}
	g := grid.MustNew(rows)

	words := make([]string, 500)
	for i := range words {
		d := grid.Directions[rng.Intn(len(grid.Directions))]
		n := 3 + rng.Intn(6)
		start := grid.Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
		word := ""
		for k := 0; k < n; k++ {
			c := start.Step(d.Stride(), k)
			if !g.Contains(c) {
				break
			}
			word += g.At(c)
		}
		if word == "" {
			word = "Q"
		}
		words[i] = word
	}
	return words, g
}

func benchmarkEngine(b *testing.B, name string, workers int) {
	words, g := benchInputs(b)
	engine, _ := engines(name, workers)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Search(words, g, grid.AllDirections); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_Stride(b *testing.B)    { benchmarkEngine(b, EngineStride, 0) }
func BenchmarkEngine_Stride8(b *testing.B)   { benchmarkEngine(b, EngineStride, 8) }
func BenchmarkEngine_Automaton(b *testing.B) { benchmarkEngine(b, EngineAutomaton, 0) }

func BenchmarkFingerprint(b *testing.B) {
	words, g := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Fingerprint(words, g, grid.AllDirections, false)
	}
}
