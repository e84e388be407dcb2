package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent is a change to one of the watched manifest files.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher reports changes to manifest files, typically rewritten by a dev server.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches the directories containing the given files and reports
	// events for those files only.
	Start(ctx context.Context, files []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file events. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}
