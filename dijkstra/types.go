// Package dijkstra defines configuration options and sentinel errors for the
// grid Dijkstra.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every cell (including zero-weight cells) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the destination cannot be reached.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Unreachable is the distance reported for cells that were never reached.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting cell. Default is the origin.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
// InfEdgeThreshold – cells with weight ≥ this threshold cannot be entered. Must be > 0.
type Options struct {
	Source           gridgraph.Position
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which cells are walls.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - Source:           origin.
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no walls).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
