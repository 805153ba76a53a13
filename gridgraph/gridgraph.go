// Package gridgraph provides construction and read access for CostGrid.
//
// Entering a cell costs that cell's weight; leaving costs nothing. Searches
// therefore charge the destination weight for every move and never charge
// the start cell.
package gridgraph

import "fmt"

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice of
// non-negative weights, indexed values[y][x].
// It deep-copies the input to ensure immutability.
// Returns ErrMalformedGrid (wrapped with the offending row or cell) if the
// grid is empty, ragged, or holds a negative weight.
// Complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	}
	h, w := len(values), len(values[0])
	weights := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: negative weight %d at %d,%d", ErrMalformedGrid, v, x, y)
			}
		}
		weights = append(weights, row...)
	}

	return &CostGrid{width: w, height: h, weights: weights}, nil
}

// Width returns the number of columns.
func (g *CostGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *CostGrid) Height() int { return g.height }

// Size returns the number of cells, Width×Height.
func (g *CostGrid) Size() int { return len(g.weights) }

// Corner returns the bottom-right position, the default search target.
func (g *CostGrid) Corner() Position {
	return Position{X: g.width - 1, Y: g.height - 1}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Weight returns the cost of entering p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *CostGrid) Weight(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s not in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}

	return g.weights[g.Index(p)], nil
}

// WeightAt returns the weight at a row-major index without bounds checks.
// Callers must obtain idx from Index on an in-bounds position.
func (g *CostGrid) WeightAt(idx int) int {
	return g.weights[idx]
}

// Step returns p moved by (dx, dy) and true, or the zero Position and false
// if the move would leave the grid.
// Complexity: O(1).
func (g *CostGrid) Step(p Position, dx, dy int) (Position, bool) {
	next := Position{X: p.X + dx, Y: p.Y + dy}
	if !g.InBounds(next) {
		return Position{}, false
	}

	return next, true
}

// Index maps p to its row-major index: Y*Width + X.
// Complexity: O(1).
func (g *CostGrid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// Rows returns a deep copy of the weights as values[y][x].
func (g *CostGrid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.weights[y*g.width:(y+1)*g.width])
	}

	return rows
}
