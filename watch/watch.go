// Package watch regenerates a project whenever its template directory
// changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/radovskyb/watcher"

	"tscdk/output"
)

// DefaultInterval is how often the template directory is polled.
const DefaultInterval = 100 * time.Millisecond

var (
	// ErrInterval is returned for a polling interval the watcher cannot use.
	ErrInterval = errors.New("polling interval must be at least 1ns")

	// ErrStarted is returned when Run is called on a Watcher a second time.
	ErrStarted = errors.New("watcher already started")
)

// Watcher polls a template directory and calls regenerate after changes.
type Watcher struct {
	dir        string
	regenerate func() error
	watcher    *watcher.Watcher
	started    atomic.Bool
}

// New returns a Watcher for the templates under dir.
func New(dir string, regenerate func() error) *Watcher {
	return &Watcher{
		dir:        dir,
		regenerate: regenerate,
		watcher:    watcher.New(),
	}
}

// Run regenerates once, then again after every change, until ctx is done.
// Failed regenerations are logged and the loop keeps going. A Watcher runs
// once.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) error {
	// Start rejects these before it signals Wait, so check them here
	if interval < time.Nanosecond {
		return fmt.Errorf("%w: %s", ErrInterval, interval)
	}
	if !w.started.CompareAndSwap(false, true) {
		return ErrStarted
	}

	// at most one event per polling cycle, so a burst of saves regenerates once
	w.watcher.SetMaxEvents(1)
	w.watcher.FilterOps(watcher.Create, watcher.Write, watcher.Remove, watcher.Rename, watcher.Move)

	if err := w.watcher.AddRecursive(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.run()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		for {
			select {
			case event := <-w.watcher.Event:
				if event.FileInfo != nil && event.IsDir() && event.Op == watcher.Write {
					continue
				}
				output.Debug("template changed", "path", event.Path, "op", event.Op)
				w.run()
			case err := <-w.watcher.Error:
				if errors.Is(err, watcher.ErrWatchedFileDeleted) {
					output.Warn("watched file deleted", "err", err)
					continue
				}
				output.Error("watch error", "err", err)
			case <-w.watcher.Closed:
				return
			case <-stopped:
				return
			case <-ctx.Done():
				w.watcher.Wait()
				w.watcher.Close()
				return
			}
		}
	}()

	output.Info("watching templates", "dir", w.dir)
	if err := w.watcher.Start(interval); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	return nil
}

func (w *Watcher) run() {
	if err := w.regenerate(); err != nil {
		output.Error("regenerate failed", "err", err)
		return
	}
	output.Info("regenerated")
}
