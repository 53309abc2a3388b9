// Package cli implements a small line-oriented control protocol for
// batch/scripted solving, in the spirit of a UCI-style engine front end.
// Grounded on the teacher's internal/uci/uci.go: a bufio.Scanner-driven
// command loop, a typed options struct built up across "set"-style
// commands, and handler methods dispatched by a switch on the first
// token of each line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/deckfmt"
	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
	"github.com/arjunmenon/klondikesolve/internal/game"
	"github.com/arjunmenon/klondikesolve/internal/presolved"
	"github.com/arjunmenon/klondikesolve/internal/replay"
	"github.com/arjunmenon/klondikesolve/internal/solver"
	"github.com/arjunmenon/klondikesolve/internal/store"
)

// Rules holds the mutable game rules the "rules" command adjusts before
// "deal"/"solve".
type Rules struct {
	DrawSetting         int
	TalonLookAheadLimit int
	RecycleLimit        int
}

// DefaultRules mirrors newGame's own defaults.
func DefaultRules() Rules {
	return Rules{DrawSetting: 1, TalonLookAheadLimit: 24, RecycleLimit: game.NoRecycleLimit}
}

// CLI runs the line-oriented control loop over an input/output stream
// pair, holding the current deal, rules, solve limits, and last result.
type CLI struct {
	out io.Writer

	rules  Rules
	limits solver.Limits
	deal   *game.Game

	solving  atomic.Bool
	done     chan solver.Result
	lastResu solver.Result
	haveResu bool

	db   *store.Store    // optional; nil if not opened
	book *presolved.Book // optional; nil if no known-deal cache loaded
}

// New creates a CLI writing command responses to out.
func New(out io.Writer) *CLI {
	return &CLI{
		out:    out,
		rules:  DefaultRules(),
		limits: solver.DefaultLimits(),
	}
}

// AttachStore wires a persistent solved-deal cache into the CLI; each solve
// result is recorded against it when present. The CLI does not look up a
// stored result before solving: every "solve" runs a full search.
func (c *CLI) AttachStore(db *store.Store) { c.db = db }

// AttachBook wires an optional known-deal shortcut cache into the CLI;
// solves seed their fringe ordering from it when present.
func (c *CLI) AttachBook(book *presolved.Book) { c.book = book }

// Run reads commands from in, one per line, until EOF or "quit".
func (c *CLI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "rules":
			c.handleRules(args)
		case "limits":
			c.handleLimits(args)
		case "deal":
			c.handleDeal(args)
		case "dealseed":
			c.handleDealSeed(args)
		case "solve":
			c.handleSolve()
		case "wait":
			c.handleWait()
		case "status":
			c.handleStatus()
		case "result":
			c.handleResult()
		case "replay":
			c.handleReplay()
		case "quit":
			return
		default:
			fmt.Fprintf(c.out, "error unknown command %q\n", cmd)
		}
	}
}

func (c *CLI) handleRules(args []string) {
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(c.out, "error invalid value for %s: %q\n", k, v)
			return
		}
		switch k {
		case "draw":
			c.rules.DrawSetting = n
		case "lookahead":
			c.rules.TalonLookAheadLimit = n
		case "recycle":
			c.rules.RecycleLimit = n
		}
	}
	fmt.Fprintf(c.out, "rules draw=%d lookahead=%d recycle=%d\n",
		c.rules.DrawSetting, c.rules.TalonLookAheadLimit, c.rules.RecycleLimit)
}

func (c *CLI) handleLimits(args []string) {
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(c.out, "error invalid value for %s: %q\n", k, v)
			return
		}
		switch k {
		case "movetreecap":
			c.limits.MoveTreeCap = n
		case "closedlistcap":
			c.limits.ClosedListCap = n
		case "threads":
			c.limits.Threads = n
		}
	}
	fmt.Fprintf(c.out, "limits movetreecap=%d closedlistcap=%d threads=%d\n",
		c.limits.MoveTreeCap, c.limits.ClosedListCap, c.limits.Threads)
}

// handleDeal parses "deal <human|pysol|numeric> <card tokens...>".
func (c *CLI) handleDeal(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "error deal requires a format and card list")
		return
	}
	var format deckfmt.Format
	switch args[0] {
	case "human":
		format = deckfmt.Human
	case "pysol":
		format = deckfmt.PySol
	case "numeric":
		format = deckfmt.Numeric
	default:
		fmt.Fprintf(c.out, "error unknown deck format %q\n", args[0])
		return
	}
	deck, err := deckfmt.Parse(format, strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(c.out, "error %v\n", err)
		return
	}
	c.setDeal(deck)
	fmt.Fprintln(c.out, "ok")
}

func (c *CLI) handleDealSeed(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "error dealseed requires exactly one seed")
		return
	}
	seed, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(c.out, "error invalid seed %q\n", args[0])
		return
	}
	c.setDeal(deckfmt.Seeded(seed))
	fmt.Fprintln(c.out, "ok")
}

func (c *CLI) setDeal(deck card.Deck) {
	c.deal = game.NewGame(deck, c.rules.DrawSetting, c.rules.TalonLookAheadLimit, c.rules.RecycleLimit)
	c.haveResu = false
}

func (c *CLI) handleSolve() {
	if c.deal == nil {
		fmt.Fprintln(c.out, "error no deal set")
		return
	}
	if c.solving.Load() {
		fmt.Fprintln(c.out, "error a solve is already in progress")
		return
	}
	c.solving.Store(true)
	c.done = make(chan solver.Result, 1)
	deal, limits, book := c.deal, c.limits, c.book
	go func() {
		res := solver.Solve(deal, limits, book)
		c.done <- res
	}()
	fmt.Fprintln(c.out, "solving")
}

func (c *CLI) handleWait() {
	if !c.solving.Load() || c.done == nil {
		fmt.Fprintln(c.out, "error no solve in progress")
		return
	}
	res := <-c.done
	c.solving.Store(false)
	c.lastResu = res
	c.haveResu = true
	if c.db != nil {
		key := dealKeyFor(c.deal, c.rules)
		_ = c.db.Record(key, res)
	}
	c.printResult(res)
}

func (c *CLI) handleStatus() {
	if c.solving.Load() {
		fmt.Fprintln(c.out, "solving")
	} else {
		fmt.Fprintln(c.out, "idle")
	}
}

func (c *CLI) handleResult() {
	if !c.haveResu {
		fmt.Fprintln(c.out, "error no result yet")
		return
	}
	c.printResult(c.lastResu)
}

func (c *CLI) printResult(res solver.Result) {
	fmt.Fprintf(c.out, "result %s moves=%d states=%d treesize=%d fringe=%d\n",
		res.Code, totalMoves(res.Solution), res.StateCount, res.MoveTreeSize, res.FinalFringeSize)
}

func (c *CLI) handleReplay() {
	if !c.haveResu || c.deal == nil {
		fmt.Fprintln(c.out, "error no result to replay")
		return
	}
	steps := replay.Expand(c.deal, c.lastResu.Solution)
	for _, s := range steps {
		fmt.Fprintf(c.out, "%d %s %s->%s", s.Number, s.Kind, s.From, s.To)
		if s.NCards > 1 {
			fmt.Fprintf(c.out, " x%d", s.NCards)
		}
		if s.Flip {
			fmt.Fprint(c.out, " flip")
		}
		fmt.Fprintln(c.out)
	}
}

func dealKeyFor(deal *game.Game, rules Rules) store.DealKey {
	return store.DealKey{
		Deal:         fingerprint.Compute(deal),
		DrawSetting:  rules.DrawSetting,
		RecycleLimit: rules.RecycleLimit,
	}
}

func totalMoves(moves []game.Move) int {
	n := 0
	for _, m := range moves {
		n += m.NMoves()
	}
	return n
}
