package momentum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

func testNode(x, y int, d Direction, run int) Node {
	return Node{Pos: gridgraph.Position{X: x, Y: y}, RunState: RunState{Dir: d, Run: run}}
}

func TestFrontier_PopsMinFirst(t *testing.T) {
	f := newFrontier(0)
	_, ok := f.PopMin()
	require.False(t, ok, "empty frontier")

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		f.Push(entry{cost: int64(rng.Intn(100)), node: testNode(i%7, i%5, Direction(i%4), i%3)})
	}
	require.Equal(t, 500, f.Len())

	last := int64(-1)
	for f.Len() > 0 {
		e, ok := f.PopMin()
		require.True(t, ok)
		assert.GreaterOrEqual(t, e.cost, last)
		last = e.cost
	}
}

func TestFrontier_KeepsDuplicates(t *testing.T) {
	f := newFrontier(4)
	n := testNode(1, 1, East, 2)
	f.Push(entry{cost: 9, node: n})
	f.Push(entry{cost: 4, node: n})
	require.Equal(t, 2, f.Len())

	e, _ := f.PopMin()
	assert.Equal(t, int64(4), e.cost)
	e, _ = f.PopMin()
	assert.Equal(t, int64(9), e.cost)
}

func TestLedger(t *testing.T) {
	l := newLedger(0, true)
	seed := testNode(0, 0, East, 0)
	a := testNode(1, 0, East, 1)
	b := testNode(1, 1, South, 1)

	_, ok := l.Best(a)
	assert.False(t, ok)
	assert.False(t, l.Stale(a, 100))

	l.Record(entry{cost: 0, node: seed, root: true})
	l.Record(entry{cost: 3, node: a, parent: seed})
	l.Record(entry{cost: 1, node: a, parent: b})
	best, ok := l.Best(a)
	require.True(t, ok)
	assert.Equal(t, int64(3), best, "first record wins")

	assert.True(t, l.Stale(a, 3), "equal cost is stale once finalized")
	assert.True(t, l.Stale(a, 7))

	l.Record(entry{cost: 5, node: b, parent: a})
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []Node{seed, a, b}, l.PathTo(b))

	assert.Nil(t, newLedger(0, false).PathTo(b))
}
