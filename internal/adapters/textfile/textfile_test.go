package textfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWords_TrimsAndSkipsBlank(t *testing.T) {
	words, err := ReadWords(strings.NewReader("  CAT \n\nDOG\r\n\tBIRD\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, words)
}

func TestReadWords_Empty(t *testing.T) {
	words, err := ReadWords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestReadWords_KeepsOrderAndDuplicates(t *testing.T) {
	words, err := ReadWords(strings.NewReader("DOG\nCAT\nDOG\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"DOG", "CAT", "DOG"}, words)
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("C,A,T\nX,A,X\n X,T,X \n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "T", g.At(grid.Coord{Row: 2, Col: 1}))
}

func TestReadGrid_MultiCharTokens(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("QU,A\nB,C\n"))
	require.NoError(t, err)
	assert.Equal(t, "QU", g.At(grid.Coord{Row: 0, Col: 0}))
	assert.False(t, g.SingleRune())
}

func TestReadGrid_Ragged(t *testing.T) {
	_, err := ReadGrid(strings.NewReader("A,B\nC\n"))
	assert.ErrorIs(t, err, grid.ErrRaggedGrid)
}

func TestReadGrid_Empty(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestReadGrid_LineTooLong(t *testing.T) {
	long := strings.Repeat("A,", maxLine)
	_, err := ReadGrid(strings.NewReader(long))
	assert.Error(t, err)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	gridPath := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte("CAT\n"), 0644))
	require.NoError(t, os.WriteFile(gridPath, []byte("C,A,T\n"), 0644))

	words, err := ReadWordsFile(wordsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT"}, words)

	g, err := ReadGridFile(gridPath)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols())

	_, err = ReadWordsFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadGridFile_ErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("A,B\nC\n"), 0644))
	_, err := ReadGridFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []grid.Result{{"CAT", 2}, {"DOG", 1}}))
	assert.Equal(t, "CAT,2\nDOG,1\n", buf.String())
}

func TestWriteResultsFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))

	require.NoError(t, WriteResultsFile(path, []grid.Result{{"CAT", 3}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CAT,3\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteResultsFile_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteResultsFile(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteResultsFile_MissingDir(t *testing.T) {
	err := WriteResultsFile(filepath.Join(t.TempDir(), "nope", "out.txt"), nil)
	assert.Error(t, err)
}
