package gridgraph_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

//----------------------------------------------------------------------------//
// NewCostGrid Tests
//----------------------------------------------------------------------------//

// TestNewCostGrid_Errors verifies that NewCostGrid rejects empty, ragged, or negative inputs.
func TestNewCostGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
	}{
		{"Nil", nil},
		{"EmptyRows", [][]int{}},
		{"EmptyCols", [][]int{{}}},
		{"NonRectangular", [][]int{{1, 2}, {3}}},
		{"LongerLaterRow", [][]int{{1}, {2, 3}}},
		{"NegativeWeight", [][]int{{1, 2}, {3, -4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.NewCostGrid(tc.grid)
			if !errors.Is(err, gridgraph.ErrMalformedGrid) {
				t.Errorf("NewCostGrid(%v) error = %v; want %v", tc.grid, err, gridgraph.ErrMalformedGrid)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNewCostGrid_DeepCopy checks that mutating the input after construction
// does not leak into the grid.
func TestNewCostGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := gridgraph.NewCostGrid(in)
	require.NoError(t, err)

	in[0][0] = 99
	w, err := g.Weight(gridgraph.Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	rows := g.Rows()
	rows[1][2] = 42
	w, err = g.Weight(gridgraph.Position{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, w)
}

// TestDimensions checks Width, Height, Size and Corner on a 3×2 grid.
func TestDimensions(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, gridgraph.Position{X: 2, Y: 1}, g.Corner())
}

//----------------------------------------------------------------------------//
// Read access Tests
//----------------------------------------------------------------------------//

// TestWeight_OutOfBounds verifies that reads outside the grid fail with ErrOutOfBounds.
func TestWeight_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	valid := []gridgraph.Position{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		assert.True(t, g.InBounds(p), "InBounds(%s)", p)
		_, err := g.Weight(p)
		assert.NoError(t, err, "Weight(%s)", p)
	}
	invalid := []gridgraph.Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, p := range invalid {
		assert.False(t, g.InBounds(p), "InBounds(%s)", p)
		_, err := g.Weight(p)
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds, "Weight(%s)", p)
	}
}

// TestStep checks single-cell moves at the grid edges.
func TestStep(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	origin := gridgraph.Position{}
	_, ok := g.Step(origin, 0, -1)
	assert.False(t, ok, "north of origin")
	_, ok = g.Step(origin, -1, 0)
	assert.False(t, ok, "west of origin")

	p, ok := g.Step(origin, 1, 0)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Position{X: 1, Y: 0}, p)

	_, ok = g.Step(p, 1, 0)
	assert.False(t, ok, "east of right edge")
}

// TestIndexCoordinate verifies the row-major round trip and WeightAt.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p))
		assert.Equal(t, i+1, g.WeightAt(i))
	}
}

// TestConcurrentReads runs many readers against one grid.
func TestConcurrentReads(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < g.Size(); i++ {
				w, err := g.Weight(g.Coordinate(i))
				assert.NoError(t, err)
				assert.Equal(t, i+1, w)
			}
		}()
	}
	wg.Wait()
}
