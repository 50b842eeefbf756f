package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/veil/pkg/core"
)

// Watch observes the directory holding the mapping file and emits an
// event whenever a file matching pattern changes. An empty pattern
// watches the mapping file itself. The watcher only notifies; it never
// reloads or mutates anything, so callers decide when to re-Load.
//
// The channel is closed when ctx is cancelled. Atomic saves appear as
// CREATE (temp file rename), not MODIFY; temp files from in-flight
// atomic writes are filtered out.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if r.Path == "" {
		return nil, core.ErrNoPath
	}
	if pattern == "" {
		pattern = filepath.Base(r.Path)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, 16)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer r.setWatcherActive(false)
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return fmt.Errorf("watcher events channel closed")
				}
				r.handleWatchEvent(ctx, event, dir, pattern, events)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return fmt.Errorf("watcher errors channel closed")
				}
				r.config.Logger.Error("fsnotify error", "error", wErr)
				if r.config.ErrorHandler != nil {
					r.config.ErrorHandler(wErr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		} else {
			r.config.Logger.Error("watcher stopped", "error", err)
		}
	}))

	return events, nil
}

func (r *Repository) handleWatchEvent(ctx context.Context, event fsnotify.Event, dir, pattern string, events chan<- core.Event) {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return
	}

	rel, err := filepath.Rel(dir, event.Name)
	if err != nil {
		return
	}
	matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
	if err != nil || !matched {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	r.config.Logger.Debug("mapping change observed", "path", event.Name, "type", eType)

	select {
	case events <- core.Event{Type: eType, Path: event.Name, Timestamp: time.Now().Unix()}:
	case <-ctx.Done():
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
