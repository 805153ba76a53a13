// Package gridgraph treats a rectangular grid of non-negative integer
// traversal costs as an implicit graph, the spatial input of every search
// in this module.
//
// What:
//
//   - CostGrid wraps a rectangular [][]int grid and is immutable once built.
//   - Position addresses a cell by column (X) and row (Y), origin top-left.
//   - Step moves one cell in a unit direction, refusing to leave the grid.
//   - ParseDigits reads the classic one-digit-per-cell text format.
//
// Why:
//
//   - Terrain maps: per-cell heat loss, fuel burn, or travel time.
//   - Routing engines that need a dense, cache-friendly cost lookup.
//   - Sharing a single read-only grid between many concurrent searches.
//
// Complexity:
//
//   - NewCostGrid:  O(W×H) time and memory (deep copy, row-major).
//   - Weight, Step: O(1).
//   - ParseDigits:  O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: empty input, ragged rows, negative weights, or non-digit bytes.
//   - ErrOutOfBounds:   a requested Position lies outside [0,Width)×[0,Height).
//
// Thread safety:
//
//   - A CostGrid is never mutated after construction; any number of goroutines
//     may read from the same instance without synchronization.
package gridgraph
