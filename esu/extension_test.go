package esu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/core"
)

// chain builds 1→2→…→n with both directions inserted.
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		g.InsertEdge(i, i+1)
		g.InsertEdge(i+1, i)
	}

	return g
}

func TestExtensionSet_SeedExcludesAnchor(t *testing.T) {
	g := chain(t, 3)

	// Anchor 1 (zero-based): neighbor 0 is below the anchor, neighbor 2
	// is eligible.
	seed := newExtensionSet(g.Size(), 1)
	ext := seed.grow(g, 1, 1)

	assert.Equal(t, []int{2}, ext.queue)
	assert.True(t, seed.empty(), "growing must not touch the parent pool")
}

func TestExtensionSet_GrowAppendsAfterInherited(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)
	// 1 adjacent to 2 and 4; 2 adjacent to 3 and 5.
	g.InsertEdge(1, 2)
	g.InsertEdge(1, 4)
	g.InsertEdge(2, 3)
	g.InsertEdge(2, 5)

	seed := newExtensionSet(g.Size(), 0)
	root := seed.grow(g, 0, 0)
	assert.Equal(t, []int{1, 3}, root.queue)

	w := root.take()
	assert.Equal(t, 1, w)

	// New candidates of w land behind the inherited remainder.
	child := root.grow(g, 0, w)
	assert.Equal(t, []int{3, 2, 4}, child.queue)
	assert.Equal(t, []int{3}, root.queue, "parent keeps its remaining candidates")
}

func TestExtensionSet_NeverReadmitsKnownVertices(t *testing.T) {
	// Triangle 0-1-2: once 1 and 2 are queued at the anchor level, a
	// later grow through either of them must not re-queue the other.
	g, err := core.New(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{1, 2}, {2, 1}, {2, 3}, {3, 2}, {1, 3}, {3, 1}} {
		g.InsertEdge(e[0], e[1])
	}

	seed := newExtensionSet(g.Size(), 0)
	ext := seed.grow(g, 0, 0)
	assert.Equal(t, []int{1, 2}, ext.queue)

	_ = ext.take() // consume 1
	_ = ext.take() // consume 2
	again := ext.grow(g, 0, 2)
	assert.True(t, again.empty(), "vertex 1 was already known to this branch")
}

func TestExtensionSet_TakeIsFIFO(t *testing.T) {
	g := chain(t, 4)

	seed := newExtensionSet(g.Size(), 0)
	ext := seed.grow(g, 0, 0)
	ext = ext.grow(g, 0, 1)
	ext = ext.grow(g, 0, 2)

	var order []int
	for !ext.empty() {
		order = append(order, ext.take())
	}
	assert.Equal(t, []int{1, 2, 3}, order)
}
