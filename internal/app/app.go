// Package app runs a batch of configured momentum searches against one
// shared, read-only cost grid.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/telemetry"
	"github.com/katalvlaran/crucible/momentum"
)

// Outcome is the result of one configured search.
type Outcome struct {
	Name      string               `json:"name"`
	MinRun    int                  `json:"min_run"`
	MaxRun    int                  `json:"max_run"`
	Reachable bool                 `json:"reachable"`
	Cost      int64                `json:"cost"`
	Path      []gridgraph.Position `json:"path,omitempty"`
	Expanded  int                  `json:"expanded"`
	Pushed    int                  `json:"pushed"`
	Stale     int                  `json:"stale"`
	Duration  time.Duration        `json:"duration_ns"`
}

// Runner executes searches. The zero value is not usable; see NewRunner.
type Runner struct {
	grid        *gridgraph.CostGrid
	log         zerolog.Logger
	metrics     *telemetry.Metrics
	concurrency int
	runID       string
}

// NewRunner binds a grid, logger and metrics. metrics may be nil.
// concurrency ≤ 0 means one search per CPU.
func NewRunner(grid *gridgraph.CostGrid, log zerolog.Logger, metrics *telemetry.Metrics, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	runID := uuid.NewString()

	return &Runner{
		grid:        grid,
		log:         log.With().Str("run_id", runID).Logger(),
		metrics:     metrics,
		concurrency: concurrency,
		runID:       runID,
	}
}

// RunID identifies this runner's batch in logs.
func (r *Runner) RunID() string { return r.runID }

// Run executes every search concurrently and returns outcomes in input
// order. An unreachable target is an Outcome with Reachable=false, not an
// error. Configuration errors, out-of-bounds endpoints and cancellation
// abort the batch.
func (r *Runner) Run(ctx context.Context, searches []config.Search) ([]Outcome, error) {
	outcomes := make([]Outcome, len(searches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, s := range searches {
		i, s := i, s
		g.Go(func() error {
			out, err := r.search(gctx, s)
			if err != nil {
				return fmt.Errorf("search %q: %w", s.Name, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (r *Runner) search(ctx context.Context, s config.Search) (Outcome, error) {
	log := r.log.With().
		Str("search", s.Name).
		Int("min_run", s.MinRun).
		Int("max_run", s.MaxRun).
		Logger()

	opts := Options(s)
	opts = append(opts, momentum.WithContext(ctx))
	if r.metrics != nil {
		opts = append(opts, r.metrics.SearchOptions(s.Name)...)
	}

	searcher, err := momentum.NewSearcher(r.grid, opts...)
	if err != nil {
		r.observe(s.Name, telemetry.OutcomeError, 0, 0)
		return Outcome{}, err
	}

	log.Debug().
		Stringer("start", searcher.Start()).
		Stringer("target", searcher.Target()).
		Msg("search started")
	started := time.Now()
	res, err := searcher.Run()
	elapsed := time.Since(started)

	out := Outcome{
		Name:     s.Name,
		MinRun:   s.MinRun,
		MaxRun:   s.MaxRun,
		Expanded: res.Expanded,
		Pushed:   res.Pushed,
		Stale:    res.Stale,
		Duration: elapsed,
	}
	switch {
	case err == nil:
		out.Reachable = true
		out.Cost = res.Cost
		out.Path = res.Positions()
		r.observe(s.Name, telemetry.OutcomeFound, res.Cost, elapsed)
		log.Info().
			Int64("cost", res.Cost).
			Int("expanded", res.Expanded).
			Int("stale", res.Stale).
			Dur("elapsed", elapsed).
			Msg("search finished")
	case errors.Is(err, momentum.ErrUnreachable):
		r.observe(s.Name, telemetry.OutcomeUnreachable, 0, elapsed)
		log.Warn().
			Err(err).
			Int("expanded", res.Expanded).
			Dur("elapsed", elapsed).
			Msg("target unreachable")
	default:
		r.observe(s.Name, telemetry.OutcomeError, 0, elapsed)
		return Outcome{}, err
	}

	return out, nil
}

func (r *Runner) observe(search, outcome string, cost int64, elapsed time.Duration) {
	if r.metrics != nil {
		r.metrics.ObserveSearch(search, outcome, cost, elapsed)
	}
}

// Options translates a configured search into momentum options.
func Options(s config.Search) []momentum.Option {
	opts := []momentum.Option{momentum.WithRuns(s.MinRun, s.MaxRun)}
	if s.Start != nil {
		opts = append(opts, momentum.WithStart(gridgraph.Position{X: s.Start.X, Y: s.Start.Y}))
	}
	if s.Target != nil {
		opts = append(opts, momentum.WithTarget(gridgraph.Position{X: s.Target.X, Y: s.Target.Y}))
	}
	if s.MaxCost != nil {
		opts = append(opts, momentum.WithMaxCost(*s.MaxCost))
	}
	if s.Path {
		opts = append(opts, momentum.WithReturnPath())
	}

	return opts
}
