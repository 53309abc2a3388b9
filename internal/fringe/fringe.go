// Package fringe implements the indexed priority fringe: a dynamically
// growing vector of per-f-value LIFO stacks, approximating a priority
// queue keyed by small integer f = g + h values.
package fringe

import (
	"sync"
	"time"

	"github.com/arjunmenon/klondikesolve/internal/searchtree"
)

const (
	maxPopRetries = 5
	retryDelay    = time.Millisecond
)

type bucket struct {
	mu    sync.Mutex
	stack []searchtree.Index
}

// Fringe is a priority queue of leaf indices keyed by f. Bucket i holds
// leaves at f == startF+i. Growth of the outer vector is serialized by a
// coarse lock; bucket push/pop each take only that bucket's own lock.
type Fringe struct {
	startF  int
	growMu  sync.Mutex
	buckets []*bucket
	size    int // advisory only, for diagnostics; not load-bearing
	sizeMu  sync.Mutex
}

// New creates a fringe whose lowest possible f-value is startF (normally
// h(start), the root heuristic value).
func New(startF int) *Fringe {
	return &Fringe{startF: startF}
}

func (f *Fringe) bucketFor(fValue int) *bucket {
	i := fValue - f.startF
	if i < 0 {
		i = 0
	}
	f.growMu.Lock()
	for i >= len(f.buckets) {
		f.buckets = append(f.buckets, &bucket{})
	}
	b := f.buckets[i]
	f.growMu.Unlock()
	return b
}

// Push admits leaf into the bucket for fValue.
func (f *Fringe) Push(fValue int, leaf searchtree.Index) {
	b := f.bucketFor(fValue)
	b.mu.Lock()
	b.stack = append(b.stack, leaf)
	b.mu.Unlock()
	f.sizeMu.Lock()
	f.size++
	f.sizeMu.Unlock()
}

// PopLowest scans for the first non-empty bucket and pops its top (LIFO).
// Because the scan races with concurrent pushes/pops, the result need not
// be the globally minimal f at the instant of return — monotonicity of h
// ensures this does not compromise eventual minimality. After a bounded
// number of retries with no find, returns ok=false: the caller should
// treat the fringe as (momentarily, perhaps permanently) empty.
func (f *Fringe) PopLowest() (searchtree.Index, bool) {
	for attempt := 0; attempt < maxPopRetries; attempt++ {
		f.growMu.Lock()
		n := len(f.buckets)
		f.growMu.Unlock()

		for i := 0; i < n; i++ {
			b := f.buckets[i]
			b.mu.Lock()
			if len(b.stack) > 0 {
				idx := b.stack[len(b.stack)-1]
				b.stack = b.stack[:len(b.stack)-1]
				b.mu.Unlock()
				f.sizeMu.Lock()
				f.size--
				f.sizeMu.Unlock()
				return idx, true
			}
			b.mu.Unlock()
		}
		if attempt < maxPopRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	return 0, false
}

// Len returns an advisory count of entries currently pushed but not popped
// (for diagnostics/reporting only; racy by construction under concurrency).
func (f *Fringe) Len() int {
	f.sizeMu.Lock()
	defer f.sizeMu.Unlock()
	return f.size
}
