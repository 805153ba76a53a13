package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/crucible/momentum"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics collects per-search counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	pushed   *prometheus.CounterVec
	stale    *prometheus.CounterVec
	cost     *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the search metrics under namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of searches by outcome",
			},
			[]string{"search", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "states_expanded_total",
				Help:      "Search states finalized and expanded",
			},
			[]string{"search"},
		),
		pushed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "frontier_pushes_total",
				Help:      "Successor states pushed onto the frontier",
			},
			[]string{"search"},
		),
		stale: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_entries_total",
				Help:      "Frontier entries discarded because a cheaper copy was finalized",
			},
			[]string{"search"},
		),
		cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "minimal_cost",
				Help:      "Minimal accumulated cost of the last successful search",
			},
			[]string{"search"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall-clock duration of a search",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"search"},
		),
	}
	m.registry.MustRegister(m.searches, m.expanded, m.pushed, m.stale, m.cost, m.duration)

	return m
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// SearchOptions returns hooks that count expansions, pushes and stale
// entries for the named search while it runs.
func (m *Metrics) SearchOptions(search string) []momentum.Option {
	expanded := m.expanded.WithLabelValues(search)
	pushed := m.pushed.WithLabelValues(search)
	stale := m.stale.WithLabelValues(search)

	return []momentum.Option{
		momentum.WithOnPop(func(momentum.Node, int64) error {
			expanded.Inc()
			return nil
		}),
		momentum.WithOnPush(func(momentum.Node, int64) { pushed.Inc() }),
		momentum.WithOnStale(func(momentum.Node, int64) { stale.Inc() }),
	}
}

// ObserveSearch records the outcome of a finished search.
func (m *Metrics) ObserveSearch(search, outcome string, cost int64, elapsed time.Duration) {
	m.searches.WithLabelValues(search, outcome).Inc()
	m.duration.WithLabelValues(search).Observe(elapsed.Seconds())
	if outcome == OutcomeFound {
		m.cost.WithLabelValues(search).Set(float64(cost))
	}
}

// WriteFile writes every metric to path in the text exposition format,
// atomically, for a node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
