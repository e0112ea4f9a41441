package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/petdb/internal/ports"
)

const defaultDebounceDelay = 100 * time.Millisecond

// Watcher implements ports.FileWatcher with fsnotify.
// It watches the parent directory so that atomic replacements (rename over
// the file) are seen as well as in-place writes.
type Watcher struct {
	path          string
	debounceDelay time.Duration
	logger        ports.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a Watcher for path. A non-positive delay uses 100ms.
func NewWatcher(path string, delay time.Duration, logger ports.Logger) *Watcher {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return &Watcher{path: path, debounceDelay: delay, logger: logger}
}

// Run watches the file until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Debug("watching data file", ports.String("path", w.path))

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceNotify(ctx, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) debounceNotify(ctx context.Context, onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		onChange()
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
