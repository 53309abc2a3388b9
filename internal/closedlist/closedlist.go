// Package closedlist implements the thread-safe fingerprint -> shortest-
// known-move-count map, lock-striped across many partitions so workers
// make progress in parallel.
package closedlist

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
)

// numStripes is the partition count; a power of two so the hash-to-stripe
// mapping is a cheap mask. Chosen generously since each stripe is only a
// mutex plus a map header.
const numStripes = 256

type stripe struct {
	mu sync.Mutex
	m  map[fingerprint.Key]int
}

// ClosedList is safe for concurrent use by many goroutines.
type ClosedList struct {
	stripes [numStripes]stripe
}

// New returns an empty closed list.
func New() *ClosedList {
	cl := &ClosedList{}
	for i := range cl.stripes {
		cl.stripes[i].m = make(map[fingerprint.Key]int)
	}
	return cl
}

func keyHash(k fingerprint.Key) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], k[0])
	binary.LittleEndian.PutUint64(buf[8:16], k[1])
	binary.LittleEndian.PutUint64(buf[16:24], k[2])
	return xxhash.Sum64(buf[:])
}

func (cl *ClosedList) stripeFor(k fingerprint.Key) *stripe {
	return &cl.stripes[keyHash(k)%numStripes]
}

// IsShortPath atomically inserts (state, g) if state is absent, or updates
// the stored value to g if g is smaller, returning true in both cases.
// Returning false means some prior path already reaches state in <= g
// moves, so the caller's path is not worth keeping.
func (cl *ClosedList) IsShortPath(state fingerprint.Key, g int) bool {
	s := cl.stripeFor(state)
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.m[state]
	if !ok || g < cur {
		s.m[state] = g
		return true
	}
	return false
}

// Len returns the total number of distinct fingerprints recorded, for
// diagnostics/reporting.
func (cl *ClosedList) Len() int {
	n := 0
	for i := range cl.stripes {
		cl.stripes[i].mu.Lock()
		n += len(cl.stripes[i].m)
		cl.stripes[i].mu.Unlock()
	}
	return n
}
