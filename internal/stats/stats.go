// Package stats keeps process-wide creation counters for each entity kind,
// partitioned by an optional discriminant such as a user role. Counts only
// grow; they reset when the process does.
package stats

import "sync"

// Snapshot is a point-in-time view of one kind's counters.
type Snapshot struct {
	Total          uint64            `json:"total"`
	ByDiscriminant map[string]uint64 `json:"by_discriminant,omitempty"`
}

// Registry counts entity creations. It is safe for concurrent use; the server
// records from request handlers.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*counts
}

type counts struct {
	total          uint64
	byDiscriminant map[string]uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*counts)}
}

// Record counts one creation of the given kind. An empty discriminant counts
// toward the total only.
func (r *Registry) Record(kind, discriminant string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.kinds[kind]
	if !ok {
		c = &counts{byDiscriminant: make(map[string]uint64)}
		r.kinds[kind] = c
	}
	c.total++
	if discriminant != "" {
		c.byDiscriminant[discriminant]++
	}
}

// Snapshot returns the current counters for kind. An unseen kind yields a
// zero snapshot.
func (r *Registry) Snapshot(kind string) Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.kinds[kind]
	if !ok {
		return Snapshot{}
	}
	return c.snapshot()
}

// SnapshotAll returns the current counters for every kind seen so far.
func (r *Registry) SnapshotAll() map[string]Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Snapshot, len(r.kinds))
	for kind, c := range r.kinds {
		out[kind] = c.snapshot()
	}
	return out
}

// snapshot copies the counts so callers cannot alias the live map.
func (c *counts) snapshot() Snapshot {
	s := Snapshot{Total: c.total}
	if len(c.byDiscriminant) > 0 {
		s.ByDiscriminant = make(map[string]uint64, len(c.byDiscriminant))
		for d, n := range c.byDiscriminant {
			s.ByDiscriminant[d] = n
		}
	}
	return s
}
