// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import (
	"time"

	"github.com/corey/wordgrid/internal/domain/grid"
)

// Store persists search results to durable storage.
// Two namespaces exist: a result cache keyed by input fingerprint, and an
// append-only run history keyed by time-ordered run ID.
//
// Crash safety: every Save must be transactional. A crash mid-write must not
// corrupt previously committed data.
type Store interface {
	// LoadCached returns the cached results for a fingerprint.
	// Returns nil, false, nil on a cache miss.
	LoadCached(fingerprint string) ([]grid.Result, bool, error)

	// SaveCached stores results under a fingerprint, replacing any prior entry.
	SaveCached(fingerprint string, results []grid.Result) error

	// SaveRun appends a run to the history.
	SaveRun(run *Run) error

	// LoadRun retrieves a run by ID. Returns nil, nil if it does not exist.
	LoadRun(id string) (*Run, error)

	// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
	ListRuns(limit int) ([]*Run, error)

	// Wipe removes all cached results and run history.
	// Idempotent: wiping an empty store is not an error.
	Wipe() error
}

// Run records one search invocation.
type Run struct {
	ID          string        `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	Elapsed     time.Duration `json:"elapsed"`
	WordsPath   string        `json:"words_path"`
	GridPath    string        `json:"grid_path"`
	Directions  string        `json:"directions"`
	IgnoreCase  bool          `json:"ignore_case"`
	Engine      string        `json:"engine"`
	Cached      bool          `json:"cached"`
	Fingerprint string        `json:"fingerprint"`
	WordCount   int           `json:"word_count"`
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	Results     []grid.Result `json:"results"`
}

// Occurrences sums the counts of all results in the run.
func (r *Run) Occurrences() int {
	n := 0
	for _, res := range r.Results {
		n += res.Count
	}
	return n
}
