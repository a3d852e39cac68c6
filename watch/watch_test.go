package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, w *Watcher) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, 10*time.Millisecond)
	}()
	w.watcher.Wait()
	return cancel, done
}

func stop(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRunRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))

	var count atomic.Int32
	w := New(dir, func() error {
		count.Add(1)
		return nil
	})
	cancel, done := start(t, w)
	defer stop(t, cancel, done)

	assert.Equal(t, int32(1), count.Load(), "regenerates once before watching")

	w.watcher.TriggerEvent(watcher.Write, nil)
	assert.Eventually(t, func() bool { return count.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi"), 0o644))
	assert.Eventually(t, func() bool { return count.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
}

func TestRunKeepsGoingAfterFailure(t *testing.T) {
	var count atomic.Int32
	w := New(t.TempDir(), func() error {
		if count.Add(1) == 1 {
			return errors.New("bad template")
		}
		return nil
	})
	cancel, done := start(t, w)
	defer stop(t, cancel, done)

	w.watcher.TriggerEvent(watcher.Create, nil)
	assert.Eventually(t, func() bool { return count.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestRunMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), func() error { return nil })

	err := w.Run(context.Background(), DefaultInterval)
	assert.Error(t, err)
}

func TestRunRejectsBadInterval(t *testing.T) {
	var count atomic.Int32
	w := New(t.TempDir(), func() error {
		count.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := w.Run(ctx, 0)
	assert.ErrorIs(t, err, ErrInterval)
	assert.Zero(t, count.Load(), "nothing runs before the interval is accepted")
}

func TestRunOnlyOnce(t *testing.T) {
	w := New(t.TempDir(), func() error { return nil })
	cancel, done := start(t, w)
	stop(t, cancel, done)

	err := w.Run(context.Background(), DefaultInterval)
	assert.ErrorIs(t, err, ErrStarted)
}
