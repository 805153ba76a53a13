// Package dijkstra implements Dijkstra's shortest-path algorithm on cost grids.
//
// Notes on implementation choices:
//
//   - Distances and predecessors live in flat slices indexed by CostGrid.Index.
//   - We treat any cell with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Dijkstra computes shortest distances from Options.Source to every cell of g.
//
// Returns:
//
//   - dist: dist[i] is the minimum cost to enter cell i (Unreachable if never reached).
//   - prev: predecessor indices if ReturnPath=true (nil otherwise); -1 for the
//     source and for unreached cells.
//   - err:  ErrNilGrid, an option error, or gridgraph.ErrOutOfBounds for the source.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func Dijkstra(g *gridgraph.CostGrid, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate grid and source
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if _, err := g.Weight(cfg.Source); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestCost returns the minimum cost from src to dst, or ErrNoPath.
func ShortestCost(g *gridgraph.CostGrid, src, dst gridgraph.Position, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if _, err := g.Weight(dst); err != nil {
		return 0, fmt.Errorf("dijkstra: destination: %w", err)
	}
	dist, _, err := Dijkstra(g, append(opts, Source(src))...)
	if err != nil {
		return 0, err
	}
	d := dist[g.Index(dst)]
	if d == Unreachable {
		return 0, fmt.Errorf("%w: %s from %s", ErrNoPath, dst, src)
	}

	return d, nil
}

// PathTo rebuilds the cell indices from the source to dst using prev.
// It returns nil if dst was not reached.
func PathTo(prev []int, dist []int64, dst int) []int {
	if dst < 0 || dst >= len(dist) || dist[dst] == Unreachable {
		return nil
	}
	var path []int
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.CostGrid // The input grid; read-only.
	options Options
	dist    []int64 // Cell index → current best distance from Source.
	prev    []int   // Cell index → predecessor on the shortest path.
	visited []bool  // Tracks if a cell's distance is finalized.
	pq      nodePQ  // Lazy min-heap.
}

func newRunner(g *gridgraph.CostGrid, cfg Options) *runner {
	n := g.Size()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to Unreachable and pushes Source=0 into the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinished cell and relaxes its neighbours.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax tries to improve the distance of each in-bounds neighbour of u.
func (r *runner) relax(u int) {
	from := r.g.Coordinate(u)
	for _, d := range neighborOffsets {
		to, ok := r.g.Step(from, d[0], d[1])
		if !ok {
			continue
		}
		v := r.g.Index(to)
		w := int64(r.g.WeightAt(v))
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a cell and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
