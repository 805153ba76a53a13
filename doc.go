// Package crucible finds the cheapest route for a momentum-constrained
// mover across a grid of non-negative cell costs.
//
// What is a crucible search?
//
//	A mover starts in the top-left cell and must reach the bottom-right one.
//	Entering a cell costs that cell's weight. The mover may not reverse, must
//	keep going straight for at least MinRun cells before it turns or stops,
//	and may go straight for at most MaxRun cells in a row.
//
// Everything is organized under these packages:
//
//	gridgraph/    CostGrid, Position, digit-grid parsing
//	momentum/     Direction, Node, Rules, the frontier/ledger search and Searcher
//	dijkstra/     unconstrained single-source shortest paths over the same grid
//	cmd/crucible  CLI: solve, baseline, validate
//
// Quick start:
//
//	g, _ := gridgraph.ParseDigitsString("2413\n3215\n3255")
//	cost, err := momentum.MinimalCost(g, 0, 3)
//
// Install the CLI:
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
