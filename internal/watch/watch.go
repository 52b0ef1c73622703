// Package watch regenerates output when input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phuslu/log"
)

// DefaultDebounce is how long a burst of changes must be quiet before the
// callback runs
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a set of directories. A directory that is missing at start
// is added once it is created inside another watched directory.
type Watcher struct {
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	paths   []string
	pending map[string]string // cleaned path -> path as given
}

// New starts watching every existing path. Paths that cannot be watched are
// logged and kept pending; it is an error if none can be watched.
func New(paths []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	var watched []string
	pending := make(map[string]string)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := w.Add(path); err != nil {
			log.Warn().Str("path", path).Err(err).Msg("cannot watch path yet")
			pending[filepath.Clean(path)] = path
			continue
		}
		watched = append(watched, path)
	}

	if len(watched) == 0 {
		_ = w.Close()
		return nil, fmt.Errorf("none of the paths can be watched: %v", paths)
	}

	return &Watcher{watcher: w, paths: watched, pending: pending}, nil
}

// Paths returns the paths being watched
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.paths...)
}

// addPending starts watching name if it is a pending path that now exists
func (w *Watcher) addPending(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	path, ok := w.pending[filepath.Clean(name)]
	if !ok {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		log.Debug().Str("path", path).Err(err).Msg("cannot watch created path")
		return
	}

	delete(w.pending, filepath.Clean(name))
	w.paths = append(w.paths, path)
	log.Info().Str("path", path).Msg("watching created path")
}

// Loop calls fn once after every burst of changes until ctx is cancelled
func (w *Watcher) Loop(ctx context.Context, debounce time.Duration, fn func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if event.Has(fsnotify.Create) {
				w.addPending(event.Name)
			}
			timer.Reset(debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			fn()
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run watches paths and calls fn after every burst of changes until ctx is
// cancelled
func Run(ctx context.Context, paths []string, debounce time.Duration, fn func()) error {
	w, err := New(paths)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info().Strs("paths", w.Paths()).Msg("watching for changes")
	return w.Loop(ctx, debounce, fn)
}
