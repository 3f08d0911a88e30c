package command

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultReplayWindow is how long a completed response is replayed for a
// repeated request id.
const DefaultReplayWindow = 30 * time.Second

type replayEntry struct {
	resp Response
	at   time.Time
}

// Deduplicator runs each key once: concurrent callers share the in-flight
// result and later callers get the stored response until it expires.
// Only successful responses are stored, so a failed request can be retried
// with the same key.
type Deduplicator struct {
	group  singleflight.Group
	mu     sync.Mutex
	done   map[string]replayEntry
	window time.Duration
	now    func() time.Time
}

// NewDeduplicator creates a deduplicator that remembers responses for window.
func NewDeduplicator(window time.Duration) *Deduplicator {
	return &Deduplicator{
		done:   make(map[string]replayEntry),
		window: window,
		now:    time.Now,
	}
}

// Do runs fn for key unless a response for key is still remembered.
// replayed reports whether fn was skipped for this caller.
func (d *Deduplicator) Do(key string, fn func() Response) (resp Response, replayed bool) {
	if resp, ok := d.lookup(key); ok {
		return resp, true
	}

	v, _, shared := d.group.Do(key, func() (any, error) {
		if resp, ok := d.lookup(key); ok {
			return resp, nil
		}
		resp := fn()
		if resp.OK {
			d.store(key, resp)
		}
		return resp, nil
	})
	return v.(Response), shared
}

func (d *Deduplicator) lookup(key string) (Response, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cleanupLocked()
	entry, ok := d.done[key]
	return entry.resp, ok
}

func (d *Deduplicator) store(key string, resp Response) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.done[key] = replayEntry{resp: resp, at: d.now()}
}

func (d *Deduplicator) cleanupLocked() {
	cutoff := d.now().Add(-d.window)
	for key, entry := range d.done {
		if entry.at.Before(cutoff) {
			delete(d.done, key)
		}
	}
}
