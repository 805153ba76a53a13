package momentum

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Rules holds the run-length limits that shape the state space.
type Rules struct {
	MinRun int
	MaxRun int
}

// Validate reports ErrInvalidConfig unless 0 ≤ MinRun ≤ MaxRun and MaxRun ≥ 1.
func (r Rules) Validate() error {
	switch {
	case r.MinRun < 0:
		return fmt.Errorf("%w: MinRun must be non-negative (%d)", ErrInvalidConfig, r.MinRun)
	case r.MaxRun < 1:
		return fmt.Errorf("%w: MaxRun must be at least 1 (%d)", ErrInvalidConfig, r.MaxRun)
	case r.MinRun > r.MaxRun:
		return fmt.Errorf("%w: MinRun %d exceeds MaxRun %d", ErrInvalidConfig, r.MinRun, r.MaxRun)
	}

	return nil
}

// String renders the limits as "runs[min,max]".
func (r Rules) String() string {
	return fmt.Sprintf("runs[%d,%d]", r.MinRun, r.MaxRun)
}

// CanContinue reports whether a state with run length run may step straight on.
func (r Rules) CanContinue(run int) bool { return run < r.MaxRun }

// CanTurn reports whether a state with run length run may turn.
func (r Rules) CanTurn(run int) bool { return run >= r.MinRun }

// CanStop reports whether a state with run length run may end the route.
func (r Rules) CanStop(run int) bool { return run >= r.MinRun }

// Successor is a legal move: the destination state and the cost of entering it.
type Successor struct {
	Node   Node
	Weight int
}

// Successors appends to dst every legal successor of n on g and returns the
// extended slice. The continuation (if any) comes first, then the turns in
// Orthogonals order. Moves that would leave the grid are skipped.
// n.Pos must lie within g.
func (r Rules) Successors(g *gridgraph.CostGrid, n Node, dst []Successor) []Successor {
	if r.CanContinue(n.Run) {
		dst = r.appendStep(g, n.Pos, n.Dir, n.Run+1, dst)
	}
	if r.CanTurn(n.Run) {
		for _, d := range n.Dir.Orthogonals() {
			dst = r.appendStep(g, n.Pos, d, 1, dst)
		}
	}

	return dst
}

func (r Rules) appendStep(g *gridgraph.CostGrid, from gridgraph.Position, d Direction, run int, dst []Successor) []Successor {
	dx, dy := d.Delta()
	to, ok := g.Step(from, dx, dy)
	if !ok {
		return dst
	}

	return append(dst, Successor{
		Node:   Node{Pos: to, RunState: RunState{Dir: d, Run: run}},
		Weight: g.WeightAt(g.Index(to)),
	})
}
