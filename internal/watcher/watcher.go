// Package watcher provides live cache invalidation for long-running
// processes. The registry's stat-based validation already catches stale
// bundles on lookup; this watcher is for callers that want to react to
// changes as they happen, watching a bundle's directories through fsnotify
// and reporting after a debounce window so bursts of writes coalesce into
// one notification.
package watcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/potomac-dev/potomac/internal/bundle"
	"github.com/potomac-dev/potomac/internal/logging"
)

// StaleFunc is called with the paths that changed since the last
// notification.
type StaleFunc func(changed []string)

// Watcher observes a bundle's watched directories.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger
}

// New creates a watcher. Events are batched for the debounce duration before
// the callback fires.
func New(debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Watcher{fs: fs, debounce: debounce, log: log}, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Watch registers every directory the bundle observed during discovery and
// blocks until ctx is done, invoking onStale after each debounced batch of
// changes. Directories that disappear stay registered; fsnotify reports the
// removal itself as the final event.
func (w *Watcher) Watch(ctx context.Context, b *bundle.Bundle, onStale StaleFunc) error {
	for _, dw := range b.Watches() {
		if err := w.fs.Add(dw.Path); err != nil {
			return err
		}
		w.log.Debug("watching directory", "path", dw.Path)
	}

	var (
		pending []string
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = append(pending, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)

		case <-fire:
			changed := dedupe(pending)
			pending = nil
			fire = nil
			timer = nil
			w.log.Debug("directories changed", "paths", changed)
			onStale(changed)
		}
	}
}

// dedupe removes duplicate paths, preserving first-seen order.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
