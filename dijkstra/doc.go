// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// gridgraph.CostGrid with 4-neighbour movement and no momentum rules.
//
// Overview:
//
//   - Vertices are grid cells, addressed by row-major index.
//   - Moving into a cell costs that cell's weight; the source cell is free.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - Supports optional path reconstruction, distance caps, and “impassable” cells.
//
// When to use:
//
//   - As the unconstrained baseline for the momentum search: with MinRun = 0 and
//     a MaxRun no route can hit, both must agree.
//   - For plain cheapest-route queries over a cost map.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: returns a predecessor slice, so you can rebuild each path with PathTo.
//   - WithMaxDistance: aborts exploration beyond a specified distance.
//   - WithInfEdgeThreshold: cells with weight ≥ threshold are walls.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell has at most 4 edges).
//   - Space: O(N) for the distance and predecessor slices and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          a nil grid was passed.
//   - ErrBadMaxDistance:   WithMaxDistance received a negative value.
//   - ErrBadInfThreshold:  WithInfEdgeThreshold received zero or a negative value.
//   - ErrNoPath:           ShortestCost found no route.
//   - gridgraph.ErrOutOfBounds: the source or destination lies outside the grid.
//
// Thread safety:
//
//   - The grid is read-only; concurrent calls on one grid are safe.
package dijkstra
