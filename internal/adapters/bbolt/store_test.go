package bbolt

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// bbolt Store: result cache and run history
// Expectation: cached results come back byte-identical and in order; runs list
// newest first; everything survives close/reopen.
// =============================================================================

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

// makeTestRun creates a realistic run record.
func makeTestRun(words string) *ports.Run {
	return &ports.Run{
		StartedAt:   time.Unix(1700000000, 0).UTC(),
		Elapsed:     1500 * time.Microsecond,
		WordsPath:   words,
		GridPath:    "grid.txt",
		Directions:  "udlr",
		Engine:      "stride",
		Fingerprint: "abc123",
		WordCount:   3,
		Rows:        4,
		Cols:        5,
		Results:     []grid.Result{{Word: "CAT", Count: 2}, {Word: "DOG", Count: 1}},
	}
}

func TestStore_Cache_Roundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	want := []grid.Result{{"ZEBRA", 1}, {"CAT", 12}, {"ÅSA", 3}}

	require.NoError(t, store.SaveCached("fp-1", want))

	got, ok, err := store.LoadCached("fp-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got, "order must be preserved")
}

func TestStore_Cache_Miss(t *testing.T) {
	store, _ := newTestStore(t)
	got, ok, err := store.LoadCached("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_Cache_EmptyResultsIsHit(t *testing.T) {
	// A search that found nothing is still a valid cached answer.
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveCached("fp-empty", nil))

	got, ok, err := store.LoadCached("fp-empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestStore_Cache_Overwrite(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveCached("fp", []grid.Result{{"A", 1}}))
	require.NoError(t, store.SaveCached("fp", []grid.Result{{"B", 2}}))

	got, _, err := store.LoadCached("fp")
	require.NoError(t, err)
	assert.Equal(t, []grid.Result{{"B", 2}}, got)
}

func TestStore_Cache_EmptyFingerprint(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveCached("", nil))
}

func TestStore_SaveLoadRun_Roundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	run := makeTestRun("words.txt")

	require.NoError(t, store.SaveRun(run))
	require.NotEmpty(t, run.ID, "SaveRun assigns an ID")

	loaded, err := store.LoadRun(run.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, run.ID, loaded.ID)
	assert.True(t, run.StartedAt.Equal(loaded.StartedAt))
	assert.Equal(t, run.Elapsed, loaded.Elapsed)
	assert.Equal(t, run.Directions, loaded.Directions)
	assert.Equal(t, run.Results, loaded.Results)
	assert.Equal(t, 3, loaded.Occurrences())
}

func TestStore_SaveRun_KeepsGivenID(t *testing.T) {
	store, _ := newTestStore(t)
	run := makeTestRun("w.txt")
	run.ID = "fixed-id"
	require.NoError(t, store.SaveRun(run))

	loaded, err := store.LoadRun("fixed-id")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "w.txt", loaded.WordsPath)
}

func TestStore_LoadRun_Missing(t *testing.T) {
	store, _ := newTestStore(t)
	run, err := store.LoadRun("missing")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestStore_SaveRun_Nil(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveRun(nil))
}

func TestStore_ListRuns_NewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveRun(makeTestRun(fmt.Sprintf("words-%d.txt", i))))
		time.Sleep(2 * time.Millisecond) // distinct UUIDv7 timestamps
	}

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	assert.Equal(t, "words-4.txt", runs[0].WordsPath)
	assert.Equal(t, "words-0.txt", runs[4].WordsPath)

	limited, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "words-4.txt", limited[0].WordsPath)
	assert.Equal(t, "words-3.txt", limited[1].WordsPath)
}

func TestStore_Wipe(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveCached("fp", []grid.Result{{"A", 1}}))
	require.NoError(t, store.SaveRun(makeTestRun("w.txt")))

	require.NoError(t, store.Wipe())
	require.NoError(t, store.Wipe(), "wipe is idempotent")

	_, ok, err := store.LoadCached("fp")
	require.NoError(t, err)
	assert.False(t, ok)

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Empty(t, runs)

	// Store remains usable after a wipe.
	require.NoError(t, store.SaveCached("fp", nil))
}

func TestStore_Reopen(t *testing.T) {
	// bbolt fsyncs on commit; data from committed transactions survives reopen.
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveCached("fp", []grid.Result{{"CAT", 1}}))
	run := makeTestRun("w.txt")
	require.NoError(t, store.SaveRun(run))
	require.NoError(t, store.Close())

	store2, err := NewStore(path)
	require.NoError(t, err)
	defer store2.Close()

	got, ok, err := store2.LoadCached("fp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []grid.Result{{"CAT", 1}}, got)

	loaded, err := store2.LoadRun(run.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.SaveCached(fmt.Sprintf("fp-%d", i), []grid.Result{{"W", i + 1}}))
			assert.NoError(t, store.SaveRun(makeTestRun(fmt.Sprintf("w-%d", i))))
		}(i)
	}
	wg.Wait()

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 10)

	for i := 0; i < 10; i++ {
		got, ok, err := store.LoadCached(fmt.Sprintf("fp-%d", i))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i+1, got[0].Count)
	}
}

func TestStore_LockTimeout(t *testing.T) {
	// A second open of the same file blocks on the flock and times out.
	_, path := newTestStore(t)
	_, err := NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
