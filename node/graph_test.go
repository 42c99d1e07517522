package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

func TestGraph_AddNodeAssignsIncreasingIDs(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}

	before := g.PeekNextID()
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)
	b := g.AddNode(grid.Coord{X: 1, Y: 0}, ch)

	assert.Equal(t, before, a)
	assert.Less(t, a, b)
	assert.Equal(t, b+1, g.PeekNextID())
}

func TestGraph_PeekNextIDDoesNotMutate(t *testing.T) {
	g := node.NewGraph()
	first := g.PeekNextID()
	second := g.PeekNextID()
	assert.Equal(t, first, second)
	assert.Equal(t, 0, g.NodeCount())
}

func TestGraph_NodeAndNodeAt(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 1, Row: 2}
	tile := grid.Coord{X: 4, Y: 5}

	id := g.AddNode(tile, ch)

	n, ok := g.Node(id)
	require.True(t, ok)
	assert.Equal(t, tile, n.Tile)
	assert.Equal(t, ch, n.Chunk)

	found, ok := g.NodeAt(tile)
	require.True(t, ok)
	assert.Equal(t, id, found)

	_, ok = g.Node(node.ID(9999))
	assert.False(t, ok)
}

func TestGraph_NodesInSortedOrder(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}
	other := chunk.Chunk{Col: 1, Row: 0}

	// Add out of tile order but all into the same chunk, then one into a
	// different chunk, to confirm NodesIn scopes by chunk and sorts by ID.
	c := g.AddNode(grid.Coord{X: 2, Y: 0}, ch)
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)
	_ = g.AddNode(grid.Coord{X: 0, Y: 1}, other)
	b := g.AddNode(grid.Coord{X: 1, Y: 0}, ch)

	ids := g.NodesIn(ch)
	assert.ElementsMatch(t, []node.ID{a, b, c}, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestGraph_AddEdgeAndNeighborsPreserveInsertionOrder(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)
	b := g.AddNode(grid.Coord{X: 1, Y: 0}, ch)
	c := g.AddNode(grid.Coord{X: 2, Y: 0}, ch)

	g.AddEdge(a, c, 2, node.Intra, grid.Trace{{X: 1, Y: 0}, {X: 2, Y: 0}})
	g.AddEdge(a, b, 1, node.Bridge, nil)

	edges := g.Neighbors(a)
	require.Len(t, edges, 2)
	assert.Equal(t, c, edges[0].To)
	assert.Equal(t, node.Intra, edges[0].Kind)
	assert.Equal(t, b, edges[1].To)
	assert.Equal(t, node.Bridge, edges[1].Kind)

	assert.Empty(t, g.Neighbors(b))
}

func TestGraph_NeighborsReturnsCopy(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)
	b := g.AddNode(grid.Coord{X: 1, Y: 0}, ch)
	g.AddEdge(a, b, 1, node.Bridge, nil)

	edges := g.Neighbors(a)
	edges[0].Weight = 99

	fresh := g.Neighbors(a)
	assert.Equal(t, grid.Cost(1), fresh[0].Weight)
}

func TestGraph_RemoveChunkNodesScrubsDanglingEdges(t *testing.T) {
	g := node.NewGraph()
	chA := chunk.Chunk{Col: 0, Row: 0}
	chB := chunk.Chunk{Col: 1, Row: 0}

	a := g.AddNode(grid.Coord{X: 3, Y: 0}, chA)
	b := g.AddNode(grid.Coord{X: 4, Y: 0}, chB)
	g.AddEdge(a, b, 1, node.Bridge, nil)
	g.AddEdge(b, a, 1, node.Bridge, nil)

	removed := g.RemoveChunkNodes(chB)
	assert.Equal(t, map[node.ID]struct{}{b: {}}, removed)
	assert.Equal(t, 1, g.NodeCount())

	// a still has a stale edge pointing at the now-removed b until the
	// caller scrubs it.
	assert.Len(t, g.Neighbors(a), 1)
	g.RemoveEdgesTo(removed)
	assert.Empty(t, g.Neighbors(a))

	assert.Empty(t, g.NodesIn(chB))
}

func TestGraph_RemoveNodesIgnoresUnknownIDs(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)

	removed := g.RemoveNodes([]node.ID{a, node.ID(12345)})
	assert.Equal(t, map[node.ID]struct{}{a: {}}, removed)
	assert.Equal(t, 0, g.NodeCount())
}

func TestGraph_CountsAndAllNodesSorted(t *testing.T) {
	g := node.NewGraph()
	ch := chunk.Chunk{Col: 0, Row: 0}
	c := g.AddNode(grid.Coord{X: 2, Y: 0}, ch)
	a := g.AddNode(grid.Coord{X: 0, Y: 0}, ch)
	b := g.AddNode(grid.Coord{X: 1, Y: 0}, ch)
	g.AddEdge(a, b, 1, node.Intra, nil)
	g.AddEdge(a, c, 1, node.Intra, nil)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	all := g.AllNodes()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
