package app

import (
	"context"
	"fmt"

	"github.com/corey/wordgrid/internal/adapters/fsnotify"
	"github.com/corey/wordgrid/internal/ports"
)

// Watch runs req once, then again every time the word or grid file changes,
// until ctx is cancelled. onReport receives each outcome; a failed rerun is
// reported with its error and watching continues. Reruns never overlap: a
// change that arrives mid-run triggers exactly one more run afterwards.
func (a *App) Watch(ctx context.Context, req Request, onReport func(*Report, error)) error {
	// The first run must pass validation; later failures are transient edits.
	rep, err := a.Search(ctx, req)
	if err != nil {
		return err
	}
	onReport(rep, nil)

	w, err := fsnotify.NewWatcher(a.Config.Debounce)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	return a.watchWith(ctx, w, req, onReport)
}

func (a *App) watchWith(ctx context.Context, w ports.Watcher, req Request, onReport func(*Report, error)) error {
	defer w.Stop()

	// Capacity one coalesces bursts into a single pending rerun.
	pending := make(chan struct{}, 1)
	err := w.Watch([]string{req.WordsPath, req.GridPath}, func(path string) {
		a.Logger.Debug("input changed", "path", path)
		select {
		case pending <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch inputs: %w", err)
	}
	a.Logger.Info("watching", "words", req.WordsPath, "grid", req.GridPath)

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("watch stopped")
			return nil
		case <-pending:
			rep, err := a.Search(ctx, req)
			if err != nil && ctx.Err() != nil {
				return nil
			}
			if err != nil {
				a.Logger.Warn("rerun failed", "err", err)
			}
			onReport(rep, err)
		}
	}
}
