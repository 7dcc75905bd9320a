package watcher

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into one callback per burst.
// Editors tend to emit several events per save; the schedule only needs to
// reload once.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and
// callback. The callback runs on the timer goroutine.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the debounce window. Paths are
// deduplicated through interned handles.
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
	if paths := d.take(); len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush immediately delivers all pending paths, for shutdown paths where the
// last burst must not be lost. It is a no-op when the timer already fired.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		// The timer goroutine is already delivering this batch.
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	d.fire()
}

// take drains the pending set and clears the timer.
func (d *Debouncer) take() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}

	clear(d.pending)
	d.timer = nil

	return paths
}
