// Package textfile reads word lists and grids from plain text and writes
// results back out.
//
// Word list: one word per line, surrounding whitespace trimmed, blank lines skipped.
// Grid: one row per line, line trimmed, cells separated by commas, blank lines skipped.
// Results: one "word,count" line per result.
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/wordgrid/internal/domain/grid"
)

// maxLine bounds a single input line (1MB).
const maxLine = 1 << 20

// ReadWords parses a word list.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	err := scanLines(r, func(_ int, line string) error {
		words = append(words, line)
		return nil
	})
	return words, err
}

// ReadGrid parses a comma-separated grid and validates that it is rectangular.
func ReadGrid(r io.Reader) (*grid.Grid, error) {
	var rows [][]string
	err := scanLines(r, func(_ int, line string) error {
		rows = append(rows, strings.Split(line, ","))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grid.New(rows)
}

// ReadWordsFile reads a word list from path.
func ReadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ReadGridFile reads a grid from path.
func ReadGridFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteResults writes one "word,count" line per result.
func WriteResults(w io.Writer, results []grid.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		bw.WriteString(r.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteResultsFile writes results to path atomically: a temp file in the same
// directory is written, synced, and renamed over path.
func WriteResultsFile(path string, results []grid.Result) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := WriteResults(tmp, results); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// scanLines calls fn with each trimmed, non-blank line and its 1-based number.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}
	return nil
}
