// Package momentum defines the augmented search state, sentinel errors and
// configuration options for the momentum-constrained search.
package momentum

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrInvalidConfig indicates run limits, caps or seeds that cannot describe a search.
	ErrInvalidConfig = errors.New("momentum: invalid configuration")

	// ErrUnreachable indicates that no path satisfying the run constraints reaches the target.
	ErrUnreachable = errors.New("momentum: target unreachable")
)

// Defaults mirror the classic crucible: never forced to turn, at most three cells straight.
const (
	DefaultMinRun = 0
	DefaultMaxRun = 3
)

// Direction is the facing of a moving state.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{North, East, South, West}

var directionDeltas = [4][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var directionNames = [4]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool { return d <= West }

// Delta returns the (dx, dy) of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Opposite returns the direction that reverses travel on the same axis.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Orthogonals returns the two directions perpendicular to d.
func (d Direction) Orthogonals() [2]Direction {
	return [2]Direction{(d + 1) % 4, (d + 3) % 4}
}

// String returns the compass letter of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// RunState is the momentum part of a search state: the facing and the number
// of consecutive cells traversed in it since the last turn (or since the start).
type RunState struct {
	Dir Direction
	Run int
}

// Node is the full augmented search state. Nodes are comparable and are used
// directly as map keys.
type Node struct {
	Pos gridgraph.Position
	RunState
}

// String renders the node as "x,y/E3".
func (n Node) String() string {
	return fmt.Sprintf("%s/%s%d", n.Pos, n.Dir, n.Run)
}

// Options configures a Searcher.
//
// MinRun, MaxRun – run limits; 0 ≤ MinRun ≤ MaxRun and MaxRun ≥ 1.
// Start, Target  – endpoints; default to the origin and the bottom-right corner.
// Seeds          – initial facings at Start, each with Run = 0. Default East, South.
// ReturnPath     – if true, Result.Path holds one cheapest route.
// MaxCost        – entries costing more than this are never expanded. ≥ 0.
// Ctx            – checked once per pop; cancellation aborts the run with Ctx.Err().
// OnPop          – called when a state is finalized; a non-nil error aborts the run.
// OnPush         – called for every successor pushed onto the Frontier.
// OnStale        – called when a popped entry is discarded by the Ledger check.
type Options struct {
	MinRun     int
	MaxRun     int
	Start      gridgraph.Position
	Target     gridgraph.Position
	Seeds      []Direction
	ReturnPath bool
	MaxCost    int64
	Ctx        context.Context
	OnPop      func(n Node, cost int64) error
	OnPush     func(n Node, cost int64)
	OnStale    func(n Node, cost int64)

	targetSet bool
	err       error
}

// Option represents a functional option for configuring a Searcher.
// Invalid arguments are recorded and surfaced as ErrInvalidConfig by NewSearcher.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - MinRun, MaxRun: DefaultMinRun, DefaultMaxRun.
//   - Start:          origin; Target: the grid corner (resolved by NewSearcher).
//   - Seeds:          East, South.
//   - MaxCost:        math.MaxInt64 (no cap).
//   - Ctx:            context.Background(); hooks are no-ops.
func DefaultOptions() Options {
	return Options{
		MinRun:  DefaultMinRun,
		MaxRun:  DefaultMaxRun,
		Seeds:   []Direction{East, South},
		MaxCost: maxCost,
		Ctx:     context.Background(),
		OnPop:   func(Node, int64) error { return nil },
		OnPush:  func(Node, int64) {},
		OnStale: func(Node, int64) {},
	}
}

const maxCost = int64(^uint64(0) >> 1)

// WithRuns sets the minimum and maximum straight-run lengths.
func WithRuns(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithStart sets the start position.
func WithStart(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Start = p
	}
}

// WithTarget sets the target position.
func WithTarget(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Target = p
		o.targetSet = true
	}
}

// WithSeeds replaces the initial facings at the start position.
func WithSeeds(dirs ...Direction) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: at least one seed direction required", ErrInvalidConfig)
			return
		}
		for _, d := range dirs {
			if !d.Valid() {
				o.err = fmt.Errorf("%w: seed %s", ErrInvalidConfig, d)
				return
			}
		}
		o.Seeds = append([]Direction(nil), dirs...)
	}
}

// WithReturnPath enables reconstruction of one cheapest route into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops expanding once the cheapest pending entry exceeds max.
// A search cut off this way reports ErrUnreachable.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%d)", ErrInvalidConfig, max)
			return
		}
		o.MaxCost = max
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPop registers a callback run when a state is finalized.
// Returning an error from fn stops the search.
func WithOnPop(fn func(n Node, cost int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnPush registers a callback run for every pushed successor.
func WithOnPush(fn func(n Node, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnStale registers a callback run for every discarded stale entry.
func WithOnStale(fn func(n Node, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}

// Result holds the outcome of one search.
//
// Cost     – minimal accumulated cost; meaningful only when Run returned nil.
// Path     – seed-to-goal states of one cheapest route, if ReturnPath was set.
// Expanded – states finalized (popped and not stale).
// Pushed   – Frontier pushes, seeds included.
// Stale    – popped entries discarded by the Ledger check.
type Result struct {
	Cost     int64
	Path     []Node
	Expanded int
	Pushed   int
	Stale    int
}

// Positions returns the cells visited by Path, seed cell first.
func (r Result) Positions() []gridgraph.Position {
	if len(r.Path) == 0 {
		return nil
	}
	out := make([]gridgraph.Position, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.Pos
	}

	return out
}
