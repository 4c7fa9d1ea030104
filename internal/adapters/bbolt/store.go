// Package bbolt implements the ports.Store interface using bbolt (embedded B+ tree).
// Two top-level buckets: "cache" maps an input fingerprint to a binary result list,
// "runs" maps a UUIDv7 run ID to a JSON run record. UUIDv7 keys sort by creation
// time, so a reverse cursor walk lists the newest runs first. Writes are
// transactional, so a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketCache = []byte("cache")
	bucketRuns  = []byte("runs")
)

// Store implements ports.Store backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.Store = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
// The parent directory is created if missing.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCache, bucketRuns} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCached returns the cached results for a fingerprint.
func (s *Store) LoadCached(fingerprint string) ([]grid.Result, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := tx.Bucket(bucketCache).Get([]byte(fingerprint)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	results, err := decodeResults(data)
	if err != nil {
		return nil, false, fmt.Errorf("decode cache %s: %w", fingerprint, err)
	}
	return results, true, nil
}

// SaveCached stores results under a fingerprint.
func (s *Store) SaveCached(fingerprint string, results []grid.Result) error {
	if fingerprint == "" {
		return errors.New("empty fingerprint")
	}
	data, err := encodeResults(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte(fingerprint), data)
	})
}

// SaveRun appends a run to the history. A missing ID is filled with a new UUIDv7.
func (s *Store) SaveRun(run *ports.Run) error {
	if run == nil {
		return errors.New("nil run")
	}
	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("run id: %w", err)
		}
		run.ID = id.String()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRuns).Put([]byte(run.ID), data)
	})
}

// LoadRun retrieves a run by ID. Returns nil, nil if no such run exists.
func (s *Store) LoadRun(id string) (*ports.Run, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketRuns).Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var run ports.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(limit int) ([]*ports.Run, error) {
	var runs []*ports.Run
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketRuns).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var run ports.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run %s: %w", k, err)
			}
			runs = append(runs, &run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Wipe removes all cached results and run history.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCache, bucketRuns} {
			if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}
