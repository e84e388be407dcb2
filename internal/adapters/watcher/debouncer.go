package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
// Bundlers usually write several manifests in quick succession.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces rapid file system events into one callback.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending set and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	paths := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		go d.callback(paths)
	}
}

// Flush runs the callback with all pending paths and blocks until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Already fired; let that run handle the batch.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// drain returns the pending paths sorted and clears the set. Callers hold mu.
func (d *Debouncer) drain() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)
	return paths
}
