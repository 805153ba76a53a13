package momentum

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Searcher is a validated, reusable search configuration bound to one grid.
// It holds no per-run state; see Run.
type Searcher struct {
	grid  *gridgraph.CostGrid
	rules Rules
	opts  Options
}

// NewSearcher validates opts against g and returns a Searcher.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrInvalidConfig).
//  2. Options must be well formed (ErrInvalidConfig).
//  3. Run limits must satisfy 0 ≤ MinRun ≤ MaxRun, MaxRun ≥ 1 (ErrInvalidConfig).
//  4. Start and Target must lie within g (gridgraph.ErrOutOfBounds).
func NewSearcher(g *gridgraph.CostGrid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidConfig)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.targetSet {
		cfg.Target = g.Corner()
	}

	rules := Rules{MinRun: cfg.MinRun, MaxRun: cfg.MaxRun}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := g.Weight(cfg.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if _, err := g.Weight(cfg.Target); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	return &Searcher{grid: g, rules: rules, opts: cfg}, nil
}

// Rules returns the run limits of s.
func (s *Searcher) Rules() Rules { return s.rules }

// Start returns the start position of s.
func (s *Searcher) Start() gridgraph.Position { return s.opts.Start }

// Target returns the target position of s.
func (s *Searcher) Target() gridgraph.Position { return s.opts.Target }

// Terminal reports whether n is goal-accepting: it sits on the target and its
// run satisfies MinRun.
func (s *Searcher) Terminal(n Node) bool {
	return n.Pos == s.opts.Target && s.rules.CanStop(n.Run)
}

// Run executes one search with a fresh Frontier and Ledger. Repeated calls
// return identical results.
//
// Returns:
//
//   - Result with Cost (and Path, if requested) on success.
//   - ErrUnreachable if no terminal state can be reached within MaxCost;
//     Result still carries the statistics.
//   - Ctx.Err() on cancellation, or the wrapped OnPop error.
func (s *Searcher) Run() (Result, error) {
	r := newRunner(s)
	r.seed()

	return r.process()
}

// MinimalCost searches g from the origin to the bottom-right corner under the
// given run limits and returns the minimal accumulated cost.
func MinimalCost(g *gridgraph.CostGrid, minRun, maxRun int) (int64, error) {
	s, err := NewSearcher(g, WithRuns(minRun, maxRun))
	if err != nil {
		return 0, err
	}
	res, err := s.Run()
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	s        *Searcher
	frontier *frontier
	ledger   *ledger
	succ     []Successor
	res      Result
}

func newRunner(s *Searcher) *runner {
	n := s.grid.Size()

	return &runner{
		s:        s,
		frontier: newFrontier(n),
		ledger:   newLedger(n, s.opts.ReturnPath),
		succ:     make([]Successor, 0, 3),
	}
}

// seed pushes one zero-cost, zero-run state per seed direction at Start.
func (r *runner) seed() {
	for _, d := range r.s.opts.Seeds {
		r.frontier.Push(entry{
			cost: 0,
			node: Node{Pos: r.s.opts.Start, RunState: RunState{Dir: d}},
			root: true,
		})
		r.res.Pushed++
	}
}

// process is the main loop: pop the cheapest entry, drop it if stale,
// finalize it, accept it if terminal, otherwise push all its successors.
func (r *runner) process() (Result, error) {
	opts := r.s.opts
	for {
		select {
		case <-opts.Ctx.Done():
			return r.res, opts.Ctx.Err()
		default:
		}

		// 1) Pop; an empty frontier means every reachable state is finalized.
		cur, ok := r.frontier.PopMin()
		if !ok {
			return r.res, fmt.Errorf("%w: %s from %s with runs [%d,%d]",
				ErrUnreachable, opts.Target, opts.Start, r.s.rules.MinRun, r.s.rules.MaxRun)
		}

		// 2) Entries come out in cost order, so everything left exceeds the cap too.
		if cur.cost > opts.MaxCost {
			return r.res, fmt.Errorf("%w: no route within cost %d", ErrUnreachable, opts.MaxCost)
		}

		// 3) Lazy deletion: a cheaper or equal copy was already finalized.
		if r.ledger.Stale(cur.node, cur.cost) {
			r.res.Stale++
			opts.OnStale(cur.node, cur.cost)
			continue
		}

		// 4) First pop of this state: its cost is final.
		r.ledger.Record(cur)
		r.res.Expanded = r.ledger.Len()
		if err := opts.OnPop(cur.node, cur.cost); err != nil {
			return r.res, fmt.Errorf("momentum: OnPop error at %s: %w", cur.node, err)
		}

		// 5) Goal test.
		if r.s.Terminal(cur.node) {
			r.res.Cost = cur.cost
			if opts.ReturnPath {
				r.res.Path = r.ledger.PathTo(cur.node)
			}

			return r.res, nil
		}

		// 6) Expand; duplicates are resolved at pop time.
		r.succ = r.s.rules.Successors(r.s.grid, cur.node, r.succ[:0])
		for _, sc := range r.succ {
			next := entry{
				cost:   cur.cost + int64(sc.Weight),
				node:   sc.Node,
				parent: cur.node,
			}
			r.frontier.Push(next)
			r.res.Pushed++
			opts.OnPush(next.node, next.cost)
		}
	}
}
