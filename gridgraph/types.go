// Package gridgraph defines core types for the gridgraph subpackage.
package gridgraph

import "fmt"

// Position addresses a single grid cell. X is the column, Y is the row.
type Position struct {
	X, Y int
}

// String renders the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// CostGrid is an immutable rectangular grid of non-negative traversal costs.
// weights holds the cells in row-major order: weights[y*width+x].
type CostGrid struct {
	width, height int
	weights       []int
}
