package momentum

// ledger maps each finalized Node to the cost it was finalized at, and,
// when paths are requested, to the Node it was reached from.
// Entries are only ever added.
type ledger struct {
	best map[Node]int64
	prev map[Node]Node
}

func newLedger(capacity int, withPrev bool) *ledger {
	l := &ledger{best: make(map[Node]int64, capacity)}
	if withPrev {
		l.prev = make(map[Node]Node, capacity)
	}

	return l
}

// Best returns the recorded cost of n and whether one exists.
func (l *ledger) Best(n Node) (int64, bool) {
	c, ok := l.best[n]
	return c, ok
}

// Stale reports whether an entry for n at cost must be discarded: n was
// already finalized at a cost no greater than cost. With non-negative weights
// the first finalization is optimal, so every later pop is at least as
// expensive and is dropped.
func (l *ledger) Stale(n Node, cost int64) bool {
	best, ok := l.Best(n)
	return ok && cost >= best
}

// Record finalizes n at cost unless it is already present.
func (l *ledger) Record(e entry) {
	if _, ok := l.best[e.node]; ok {
		return
	}
	l.best[e.node] = e.cost
	if l.prev != nil && !e.root {
		l.prev[e.node] = e.parent
	}
}

// Len returns the number of finalized states.
func (l *ledger) Len() int { return len(l.best) }

// PathTo walks predecessors back from goal and returns the route seed-first.
// It returns nil if predecessors were not tracked.
func (l *ledger) PathTo(goal Node) []Node {
	if l.prev == nil {
		return nil
	}
	path := []Node{goal}
	for at := goal; ; {
		p, ok := l.prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
