// Package momentum implements a minimum-cost search over a gridgraph.CostGrid
// in which movement carries momentum: a path may not continue straight for
// more than MaxRun consecutive cells, and may not turn before it has moved
// MinRun consecutive cells in its current direction.
//
// Overview:
//
//   - The constraint is folded into the graph itself. A search state (Node) is
//     a position plus a RunState: the facing Direction and the number of cells
//     moved in that direction since the last turn.
//   - Rules.Successors enumerates legal moves out of a state: continue straight
//     while Run < MaxRun, or turn 90° once Run ≥ MinRun. Reversing is never legal.
//   - Every move costs the weight of the destination cell. The start cell is never charged.
//   - Searcher drives a lazy-deletion Dijkstra over these states: a min-heap
//     Frontier ordered by accumulated cost, and a Ledger of finalized costs.
//
// Seeding and the goal:
//
//   - The search starts from zero-cost seeds at the start position with Run = 0,
//     facing East and South by default (WithSeeds overrides). Run = 0 lets the
//     first move be a continuation without tripping the MinRun turn rule.
//   - A state is terminal iff it sits on the target AND its Run ≥ MinRun. A path
//     may not stop in the middle of a committed straight run.
//
// Lazy deletion:
//
//   - Successors are pushed unconditionally; there is no decrease-key.
//   - A Node may therefore appear in the Frontier many times, but it is
//     finalized exactly once: the first pop records its cost in the Ledger and
//     every later pop of the same Node is discarded as stale.
//
// Complexity:
//
//   - States:  S ≤ W×H×4×MaxRun (plus the seeds).
//   - Time:    O(S log S); each finalized state pushes at most three successors.
//   - Space:   O(S) for the Ledger and the worst-case Frontier.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidConfig: MinRun < 0, MaxRun < 1, MinRun > MaxRun, negative MaxCost,
//     no seeds, or a nil grid. Reported by NewSearcher.
//   - ErrUnreachable: the Frontier was exhausted (or every remaining entry
//     exceeded MaxCost) without reaching a terminal state. A legitimate outcome.
//   - gridgraph.ErrOutOfBounds: start or target outside the grid, propagated unchanged.
//
// Thread safety:
//
//   - A Searcher owns no per-run state: every Run allocates a fresh Frontier and
//     Ledger. The CostGrid is read-only, so any number of Searchers (or Runs of
//     one Searcher) may execute concurrently against the same grid.
//
// Example usage:
//
//	s, err := momentum.NewSearcher(grid, momentum.WithRuns(4, 10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Run()
//	if errors.Is(err, momentum.ErrUnreachable) {
//	    // no legal route
//	}
//	fmt.Println(res.Cost)
package momentum
