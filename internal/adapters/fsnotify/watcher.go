// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the parent directories of a fixed set of files, filters events down to those
// files, and debounces bursts (editors often trigger several writes, or a write plus a
// rename, per save). A callback fires once the file has been quiet for the interval.
package fsnotify

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/wordgrid/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when NewWatcher is given zero.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
	timers   map[string]*time.Timer
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file watcher. debounce <= 0 selects DefaultDebounce.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch starts monitoring paths.
// onChange is called with the absolute path of each changed file.
func (w *Watcher) Watch(paths []string, onChange func(filePath string)) error {
	if len(paths) == 0 {
		return errors.New("no paths to watch")
	}

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !targets[path] {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					w.schedule(path, onChange)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers from errors on its own

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)arms the per-file timer so onChange fires after a quiet period.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stopped := w.stopped
		delete(w.timers, path)
		w.mu.Unlock()
		if !stopped {
			onChange(path)
		}
	})
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	close(w.done)
	return w.fw.Close()
}
