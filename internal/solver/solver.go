// Package solver implements the parallel A* driver: worker goroutines
// cooperating over a shared move tree, indexed priority fringe, and
// thread-safe closed list, with no central scheduler. Grounded on the
// teacher's Lazy-SMP engine.SearchWithLimits/workerSearch shape.
package solver

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arjunmenon/klondikesolve/internal/closedlist"
	"github.com/arjunmenon/klondikesolve/internal/finisher"
	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
	"github.com/arjunmenon/klondikesolve/internal/fringe"
	"github.com/arjunmenon/klondikesolve/internal/game"
	"github.com/arjunmenon/klondikesolve/internal/heuristic"
	"github.com/arjunmenon/klondikesolve/internal/movegen"
	"github.com/arjunmenon/klondikesolve/internal/presolved"
	"github.com/arjunmenon/klondikesolve/internal/searchtree"
)

// Code is the solver's outcome classification.
type Code string

const (
	SolvedMinimal  Code = "solved-minimal"
	Solved         Code = "solved"
	Impossible     Code = "impossible"
	GaveUp         Code = "gave-up"
	MemoryExceeded Code = "memory-exceeded"
)

// FullTalonLookAhead is the threshold at or above which a game's
// TalonLookAheadLimit is considered "full" (unbounded in practice) rather
// than a deliberately truncated "fast" search — it matches newGame's own
// default, the convention this package uses to decide solved-minimal vs.
// solved.
const FullTalonLookAhead = 24

// Limits bounds the search. Threads <= 0 picks a hardware-appropriate
// default, mirroring the teacher's SearchLimits.
type Limits struct {
	MoveTreeCap   int
	ClosedListCap int
	Threads       int
}

// DefaultLimits returns generous limits suitable for interactive use.
func DefaultLimits() Limits {
	return Limits{MoveTreeCap: 2_000_000, ClosedListCap: 4_000_000, Threads: 0}
}

// Result reports the search outcome.
type Result struct {
	Code            Code
	Solution        []game.Move
	StateCount      int
	MoveTreeSize    int
	FinalFringeSize int
}

type bestRecord struct {
	mu    sync.Mutex
	found bool
	moves int
	leaf  searchtree.Index
}

func (b *bestRecord) snapshotMoves() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.moves, b.found
}

func (b *bestRecord) record(moves int, leaf searchtree.Index) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found || moves < b.moves {
		b.found = true
		b.moves = moves
		b.leaf = leaf
		log.Printf("[Solver] new best solution: %d moves", moves)
	}
}

// Solve runs the parallel A* search to completion (subject to limits) and
// returns the best solution found, if any, with the appended deterministic
// tail from internal/finisher. book is optional (nil is fine) and, if it
// recommends a move from start's own fingerprint, seeds the order in which
// the root's branches are explored.
func Solve(start *game.Game, limits Limits, book *presolved.Book) Result {
	threads := limits.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	opts := movegen.DefaultOptions()

	tree := searchtree.New()
	h0 := heuristic.Lowest(start)
	fr := fringe.New(h0)
	cl := closedlist.New()
	fr.Push(h0, searchtree.Root)

	var best bestRecord
	var stateCount atomic.Int64
	var memExceeded atomic.Bool
	var treeCapped atomic.Bool
	var idle atomic.Int64

	var eg errgroup.Group
	for w := 0; w < threads; w++ {
		id := w
		eg.Go(func() error {
			time.Sleep(time.Duration(id) * 200 * time.Microsecond) // stagger spawn
			runWorker(start, tree, fr, cl, &best, book, opts, limits, threads, &stateCount, &memExceeded, &treeCapped, &idle)
			return nil
		})
	}
	_ = eg.Wait()

	log.Printf("[Solver] search complete: states=%d treeSize=%d fringe=%d", stateCount.Load(), tree.Len(), fr.Len())

	bestMoves, found := best.snapshotMoves()
	var solution []game.Move
	if found {
		best.mu.Lock()
		leaf := best.leaf
		best.mu.Unlock()
		solution = tree.Path(leaf)

		scratch := start.Copy()
		for _, m := range solution {
			scratch.MakeMove(m)
		}
		tail, _ := finisher.Complete(scratch)
		solution = append(solution, tail...)
	}

	code := classify(found, memExceeded.Load(), treeCapped.Load(), start.TalonLookAheadLimit)
	_ = bestMoves
	return Result{
		Code:            code,
		Solution:        solution,
		StateCount:      int(stateCount.Load()),
		MoveTreeSize:    tree.Len(),
		FinalFringeSize: fr.Len(),
	}
}

func classify(found, memExceeded, treeCapped bool, talonLookAhead int) Code {
	switch {
	case memExceeded:
		return MemoryExceeded
	case treeCapped:
		return GaveUp
	case found && talonLookAhead >= FullTalonLookAhead:
		return SolvedMinimal
	case found:
		return Solved
	default:
		return Impossible
	}
}

func totalMoves(moves []game.Move) int {
	n := 0
	for _, m := range moves {
		n += m.NMoves()
	}
	return n
}

// idlePollInterval is how often a worker that has found nothing to do
// rechecks the fringe while waiting to see whether its peers are idle too.
const idlePollInterval = time.Millisecond

func runWorker(
	start *game.Game,
	tree *searchtree.Tree,
	fr *fringe.Fringe,
	cl *closedlist.ClosedList,
	best *bestRecord,
	book *presolved.Book,
	opts movegen.Options,
	limits Limits,
	threads int,
	stateCount *atomic.Int64,
	memExceeded *atomic.Bool,
	treeCapped *atomic.Bool,
	idle *atomic.Int64,
) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Solver] worker recovered from allocation failure: %v", r)
			memExceeded.Store(true)
		}
	}()

	for {
		if memExceeded.Load() || treeCapped.Load() {
			return
		}

		branchLeaf, ok := fr.PopLowest()
		if !ok {
			branchLeaf, ok = waitForWorkOrDone(fr, idle, threads, memExceeded, treeCapped)
			if !ok {
				return
			}
		}

		history := tree.Path(branchLeaf)
		scratch := start.Copy()
		for _, m := range history {
			scratch.MakeMove(m)
		}
		branchCost := totalMoves(history)
		stateCount.Add(1)

		if expandBranch(scratch, tree, fr, cl, best, book, opts, limits, history, branchLeaf, branchCost, treeCapped) {
			return
		}
	}
}

// waitForWorkOrDone is called once a worker's own PopLowest has given up.
// Spec requires termination only once the fringe is empty *and* every
// worker is idle, not just this one, so a worker that finds nothing marks
// itself idle and keeps polling; it only gives up once every other worker
// has done the same. Any successful pop (its own or a retry) clears its
// idle mark and returns that work to the caller.
func waitForWorkOrDone(
	fr *fringe.Fringe,
	idle *atomic.Int64,
	threads int,
	memExceeded *atomic.Bool,
	treeCapped *atomic.Bool,
) (searchtree.Index, bool) {
	idle.Add(1)
	defer idle.Add(-1)
	for {
		if memExceeded.Load() || treeCapped.Load() {
			return 0, false
		}
		if idle.Load() >= int64(threads) {
			return 0, false
		}
		time.Sleep(idlePollInterval)
		if leaf, ok := fr.PopLowest(); ok {
			return leaf, true
		}
	}
}

// expandBranch collapses forced moves (automoves), records a win if found,
// and otherwise expands real branch points, pushing admissible successors.
// Returns true if the move-tree cap or the closed-list cap was tripped
// (signaling the caller to stop).
func expandBranch(
	scratch *game.Game,
	tree *searchtree.Tree,
	fr *fringe.Fringe,
	cl *closedlist.ClosedList,
	best *bestRecord,
	book *presolved.Book,
	opts movegen.Options,
	limits Limits,
	history []game.Move,
	branchLeaf searchtree.Index,
	branchCost int,
	treeCapped *atomic.Bool,
) bool {
	for {
		if scratch.Won() {
			best.record(branchCost, branchLeaf)
			return false
		}

		avail := movegen.Generate(scratch, history, opts)
		if len(avail) == 0 {
			return false
		}

		if len(avail) == 1 {
			m := avail[0]
			scratch.MakeMove(m)
			branchLeaf = tree.Append(m, branchLeaf)
			if tree.Len() > limits.MoveTreeCap {
				treeCapped.Store(true)
				return true
			}
			history = append(history, m)
			branchCost += m.NMoves()
			continue
		}

		if cl.Len() > limits.ClosedListCap {
			treeCapped.Store(true)
			return true
		}

		// The presolved cache only advises on the very first branch point
		// (the start position itself); its recommendation is pushed last
		// so it sits on top of its f-bucket's stack and is the first of
		// its peers explored, without changing any f-value or skipping
		// verification.
		if branchLeaf == searchtree.Root {
			if pick, ok := book.Probe(scratch, history); ok {
				avail = preferMove(avail, pick)
			}
		}

		for _, m := range avail {
			scratch.MakeMove(m)
			gPrime := branchCost + m.NMoves()
			bestMoves, found := best.snapshotMoves()
			fPrime := gPrime + heuristic.Lowest(scratch)
			if (!found || fPrime < bestMoves) && cl.IsShortPath(fingerprint.Compute(scratch), gPrime) {
				newLeaf := tree.Append(m, branchLeaf)
				if tree.Len() > limits.MoveTreeCap {
					scratch.UnMakeMove(m)
					treeCapped.Store(true)
					return true
				}
				fr.Push(fPrime, newLeaf)
			}
			scratch.UnMakeMove(m)
		}
		return false
	}
}

// preferMove reorders avail so pick is last, if present, so it is pushed
// to the fringe after its siblings and explored first among them.
func preferMove(avail []game.Move, pick game.Move) []game.Move {
	for i, m := range avail {
		if m == pick {
			reordered := append([]game.Move(nil), avail[:i]...)
			reordered = append(reordered, avail[i+1:]...)
			reordered = append(reordered, pick)
			return reordered
		}
	}
	return avail
}
