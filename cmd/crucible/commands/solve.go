package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/app"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/telemetry"
)

func newSolveCommand(g *globals) *cobra.Command {
	var (
		minRun      int
		maxRun      int
		showPath    bool
		metricsFile string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Find minimal route costs under run-length limits",
		Long: `Run every configured search against the grid and print one result per search.

Passing --min-run or --max-run replaces the configured searches with a
single search named "custom". A target that no legal route reaches is
reported as unreachable; it does not fail the command.`,
		Example: `  # Both classic searches
  crucible solve input.txt

  # Single search, with the route
  crucible solve --min-run 4 --max-run 10 --path input.txt

  # Searches from a config file, JSON output, metrics for node_exporter
  crucible solve -c crucible.yaml --json --metrics-file /var/lib/node_exporter/crucible.prom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, path, err := loadGrid(args, g.cfg.Grid, cmd.InOrStdin())
			if err != nil {
				return err
			}

			searches := g.cfg.Searches
			if cmd.Flags().Changed("min-run") || cmd.Flags().Changed("max-run") {
				searches = []config.Search{{Name: "custom", MinRun: minRun, MaxRun: maxRun}}
			}
			if showPath {
				searches = withPath(searches)
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = g.cfg.Concurrency
			}
			if metricsFile == "" {
				metricsFile = g.cfg.Metrics.File
			}

			check := &config.Config{Searches: searches, Logging: g.cfg.Logging, Metrics: g.cfg.Metrics, Concurrency: concurrency}
			if err := check.Validate(); err != nil {
				return err
			}

			g.log.Debug().
				Str("grid", path).
				Int("width", grid.Width()).
				Int("height", grid.Height()).
				Int("searches", len(searches)).
				Msg("grid loaded")

			metrics := telemetry.NewMetrics(g.cfg.Metrics.Namespace)
			runner := app.NewRunner(grid, g.log, metrics, concurrency)
			outcomes, err := runner.Run(cmd.Context(), searches)
			if err != nil {
				return err
			}

			if metricsFile != "" {
				if err := metrics.WriteFile(metricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				g.log.Debug().Str("file", metricsFile).Msg("metrics written")
			}

			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), outcomes)
			}

			return writeText(cmd.OutOrStdout(), outcomes)
		},
	}

	cmd.Flags().IntVar(&minRun, "min-run", 0, "cells to move straight before turning or stopping")
	cmd.Flags().IntVar(&maxRun, "max-run", 3, "cells after which a turn is forced")
	cmd.Flags().BoolVar(&showPath, "path", false, "print the cheapest route")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel searches (0 = one per CPU)")

	return cmd
}

func withPath(in []config.Search) []config.Search {
	out := make([]config.Search, len(in))
	for i, s := range in {
		s.Path = true
		out[i] = s
	}

	return out
}

func writeText(w io.Writer, outcomes []app.Outcome) error {
	for _, o := range outcomes {
		if !o.Reachable {
			if _, err := fmt.Fprintf(w, "%s: unreachable\n", o.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %d\n", o.Name, o.Cost); err != nil {
			return err
		}
		if len(o.Path) > 0 {
			cells := make([]string, len(o.Path))
			for i, p := range o.Path {
				cells[i] = p.String()
			}
			if _, err := fmt.Fprintf(w, "  path: %s\n", strings.Join(cells, " ")); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
