// Package watcher reports changes to asset manifests rewritten by a dev server or build.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
// Directories are watched rather than files so that atomic rewrites (write to a
// temporary file, then rename over the manifest) keep being observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	files     map[string]struct{}
	events    chan ports.WatchEvent
	stopOnce  sync.Once
}

// NewWatcher creates a new manifest watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	return &Watcher{
		fsWatcher: watcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start watches the parent directories of files and reports events for those files only.
func (w *Watcher) Start(ctx context.Context, files []string) error {
	w.files = make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", f)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			// A build directory that does not exist yet is common before the first build.
			w.logger.Warn("not watching " + dir + ": " + err.Error())
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// Events returns an iterator of manifest events. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "watcher: file system error"))
		}
	}
}

// convertEvent maps an fsnotify event on a watched file to a ports.WatchEvent.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return ports.WatchEvent{}, false
	}

	switch {
	case event.Op.Has(fsnotify.Write):
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	case event.Op.Has(fsnotify.Create):
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Op.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Op.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: path, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
