// Package searchtree implements the append-only, segmented move tree
// shared by every search worker: branches are represented as a leaf index,
// and a move sequence is recovered by walking prevIndex back to the root.
package searchtree

import (
	"sync"
	"sync/atomic"

	"github.com/arjunmenon/klondikesolve/internal/game"
)

// Index identifies a node (a move plus its branch's parent). Root is the
// distinguished empty-sequence leaf.
type Index int64

// Root represents the empty move sequence — the fringe's initial seed.
const Root Index = -1

const blockSize = 4096

type node struct {
	move game.Move
	prev Index
}

// Tree is append-only. A shared mutex protects appends; reads of any
// index less than the currently published size require no lock, because
// previously-allocated blocks never relocate — only new blocks are added,
// behind a copy-on-write snapshot of the outer block-pointer slice.
type Tree struct {
	mu     sync.Mutex
	blocks atomic.Value // []*[blockSize]node
	size   atomic.Int64
}

// New returns an empty tree.
func New() *Tree {
	t := &Tree{}
	t.blocks.Store(make([]*[blockSize]node, 0))
	return t
}

// Append adds a new node and returns its index. Safe for concurrent use;
// internally serialized by a mutex (the only lock in this package).
func (t *Tree) Append(move game.Move, prev Index) Index {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := Index(t.size.Load())
	blockIdx := int(idx) / blockSize
	offset := int(idx) % blockSize

	blocks := t.blocks.Load().([]*[blockSize]node)
	if blockIdx == len(blocks) {
		grown := make([]*[blockSize]node, len(blocks)+1)
		copy(grown, blocks)
		grown[blockIdx] = &[blockSize]node{}
		blocks = grown
		t.blocks.Store(blocks)
	}
	blocks[blockIdx][offset] = node{move: move, prev: prev}
	t.size.Add(1) // publish: readers seeing the new size have seen the write
	return idx
}

// Get returns the move and parent stored at idx. idx must be < Len() at
// some point visible to the caller (typically because the caller itself
// holds it from a prior Append or Path walk).
func (t *Tree) Get(idx Index) (game.Move, Index) {
	blocks := t.blocks.Load().([]*[blockSize]node)
	blockIdx := int(idx) / blockSize
	offset := int(idx) % blockSize
	n := blocks[blockIdx][offset]
	return n.move, n.prev
}

// Len returns the number of published nodes.
func (t *Tree) Len() int { return int(t.size.Load()) }

// Path reconstructs the move sequence from the root to leaf, in play
// order. leaf == Root yields an empty sequence.
func (t *Tree) Path(leaf Index) []game.Move {
	var rev []game.Move
	for leaf != Root {
		m, prev := t.Get(leaf)
		rev = append(rev, m)
		leaf = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
