// Package grid is the word-search matching engine.
//
// A Grid is a rectangular matrix of cells, each holding one token (normally a
// single letter). Search counts, per word, how many times the word can be read
// along consecutive cells in any enabled Direction. The package does no I/O and
// keeps no state between calls.
package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrRaggedGrid is wrapped by RaggedRowError.
var ErrRaggedGrid = errors.New("ragged grid")

// RaggedRowError reports a row whose length differs from row 0.
type RaggedRowError struct {
	Row  int
	Want int
	Got  int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

func (e *RaggedRowError) Unwrap() error { return ErrRaggedGrid }

// Coord addresses a cell.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate n strides away from c.
func (c Coord) Step(s Stride, n int) Coord {
	return Coord{c.Row + s.DRow*n, c.Col + s.DCol*n}
}

// Grid is an immutable rectangular matrix of cells.
type Grid struct {
	cells [][]string
	rows  int
	cols  int
}

// New validates rows and wraps them in a Grid. All rows must have the same
// length as row 0. The rows are not copied and must not be modified afterwards.
func New(rows [][]string) (*Grid, error) {
	g := &Grid{cells: rows, rows: len(rows)}
	if g.rows == 0 {
		return g, nil
	}
	g.cols = len(rows[0])
	for i, row := range rows {
		if len(row) != g.cols {
			return nil, &RaggedRowError{Row: i, Want: g.cols, Got: len(row)}
		}
	}
	return g, nil
}

// MustNew is New for literals in tests and examples. It panics on a ragged grid.
func MustNew(rows [][]string) *Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// FromStrings builds a grid with one single-rune cell per character of each line.
func FromStrings(lines ...string) (*Grid, error) {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		row := make([]string, 0, utf8.RuneCountInString(line))
		for _, r := range line {
			row = append(row, string(r))
		}
		rows[i] = row
	}
	return New(rows)
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// At returns the cell at c. The caller must keep c in bounds.
func (g *Grid) At(c Coord) string { return g.cells[c.Row][c.Col] }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cells returns the underlying rows. Callers must not modify them.
func (g *Grid) Cells() [][]string { return g.cells }

// Map returns a new grid with f applied to every cell.
func (g *Grid) Map(f func(string) string) *Grid {
	rows := make([][]string, g.rows)
	for i, row := range g.cells {
		out := make([]string, len(row))
		for j, cell := range row {
			out[j] = f(cell)
		}
		rows[i] = out
	}
	return &Grid{cells: rows, rows: g.rows, cols: g.cols}
}

// SingleRune reports whether every cell holds exactly one rune.
func (g *Grid) SingleRune() bool {
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == "" || utf8.RuneCountInString(cell) != 1 {
				return false
			}
		}
	}
	return true
}

// Line is a maximal run of cells along one direction.
type Line struct {
	Start Coord
	Dir   Direction
	Text  string
}

// Lines returns every maximal line along d, each starting at a cell whose
// predecessor in d is outside the grid. Starts are visited row-major.
func (g *Grid) Lines(d Direction) []Line {
	if g.Empty() {
		return nil
	}
	s := d.Stride()
	var lines []Line
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			start := Coord{r, c}
			if g.Contains(start.Step(s, -1)) {
				continue
			}
			sb.Reset()
			for p := start; g.Contains(p); p = p.Step(s, 1) {
				sb.WriteString(g.At(p))
			}
			lines = append(lines, Line{Start: start, Dir: d, Text: sb.String()})
		}
	}
	return lines
}

// String renders the grid in the comma-separated input format.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}
