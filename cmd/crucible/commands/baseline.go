package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/dijkstra"
)

func newBaselineCommand(g *globals) *cobra.Command {
	var wall int64

	cmd := &cobra.Command{
		Use:   "baseline [grid-file]",
		Short: "Cheapest corner-to-corner route with no momentum rules",
		Long: `Plain 4-neighbour Dijkstra from the top-left to the bottom-right cell.
Any momentum-constrained search costs at least this much.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := loadGrid(args, g.cfg.Grid, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var opts []dijkstra.Option
			if wall > 0 {
				opts = append(opts, dijkstra.WithInfEdgeThreshold(wall))
			}
			cost, err := dijkstra.ShortestCost(grid, grid.Coordinate(0), grid.Corner(), opts...)
			reachable := err == nil
			if err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
				return err
			}

			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Reachable bool  `json:"reachable"`
					Cost      int64 `json:"cost"`
				}{reachable, cost})
			}
			if !reachable {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "baseline: unreachable")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "baseline: %d\n", cost)

			return err
		},
	}

	cmd.Flags().Int64Var(&wall, "wall", 0, "cells with weight >= this value are impassable (0 = none)")

	return cmd
}
