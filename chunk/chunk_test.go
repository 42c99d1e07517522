package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
)

func TestNewLayout_RejectsSmallSize(t *testing.T) {
	_, err := chunk.NewLayout(10, 10, 1)
	assert.ErrorIs(t, err, chunk.ErrInvalidSize)
}

func TestLayout_PartialTrailingChunks(t *testing.T) {
	// 10x10 grid, chunk size 4: 3 columns/rows, the last partial (width 2).
	l, err := chunk.NewLayout(10, 10, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, l.Cols())
	assert.Equal(t, 3, l.Rows())
	assert.Len(t, l.Chunks(), 9)

	minX, minY, maxX, maxY := l.Bounds(chunk.Chunk{Col: 2, Row: 2})
	assert.Equal(t, 8, minX)
	assert.Equal(t, 8, minY)
	assert.Equal(t, 9, maxX) // clipped to grid width-1
	assert.Equal(t, 9, maxY)
}

func TestLayout_ChunkAt(t *testing.T) {
	l, err := chunk.NewLayout(16, 16, 8)
	require.NoError(t, err)

	assert.Equal(t, chunk.Chunk{Col: 0, Row: 0}, l.ChunkAt(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, chunk.Chunk{Col: 1, Row: 0}, l.ChunkAt(grid.Coord{X: 8, Y: 0}))
	assert.Equal(t, chunk.Chunk{Col: 1, Row: 1}, l.ChunkAt(grid.Coord{X: 15, Y: 15}))
}

func TestLayout_Neighbors(t *testing.T) {
	l, err := chunk.NewLayout(24, 24, 8)
	require.NoError(t, err)

	corner := chunk.Chunk{Col: 0, Row: 0}
	assert.ElementsMatch(t, []chunk.Chunk{{Col: 1, Row: 0}, {Col: 0, Row: 1}}, l.BorderNeighbors(corner))
	assert.ElementsMatch(t, []chunk.Chunk{{Col: 1, Row: 0}, {Col: 0, Row: 1}}, l.AllNeighbors(corner))

	mid := chunk.Chunk{Col: 1, Row: 1}
	assert.ElementsMatch(t, []chunk.Chunk{{Col: 2, Row: 1}, {Col: 1, Row: 2}}, l.BorderNeighbors(mid))
	assert.ElementsMatch(t,
		[]chunk.Chunk{{Col: 0, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 0}, {Col: 1, Row: 2}},
		l.AllNeighbors(mid))
}

func filledGrid(t *testing.T, w, h int, walls map[grid.Coord]bool) grid.Grid {
	t.Helper()
	costs := make([][]grid.Cost, h)
	for y := 0; y < h; y++ {
		costs[y] = make([]grid.Cost, w)
		for x := 0; x < w; x++ {
			if walls[grid.Coord{X: x, Y: y}] {
				costs[y][x] = grid.Impassable
			} else {
				costs[y][x] = 1
			}
		}
	}
	g, err := grid.FromCosts(costs)
	require.NoError(t, err)
	return g
}

func TestScanBorder_OpenFieldSingleMidpointEntrance(t *testing.T) {
	// Two 4-wide chunks side by side, fully open: the shared border run is
	// the whole height (4, below the split threshold) and collapses to one
	// entrance at the midpoint.
	g := filledGrid(t, 8, 4, nil)
	l, err := chunk.NewLayout(8, 4, 4)
	require.NoError(t, err)

	a, b := chunk.Chunk{Col: 0, Row: 0}, chunk.Chunk{Col: 1, Row: 0}
	entrances, err := chunk.ScanBorder(g, l, a, b, chunk.Thresholds{SplitThreshold: 6})
	require.NoError(t, err)

	require.Len(t, entrances, 1)
	assert.Equal(t, grid.Coord{X: 3, Y: 1}, entrances[0].TileA)
	assert.Equal(t, grid.Coord{X: 4, Y: 1}, entrances[0].TileB)
}

func TestScanBorder_LongRunSplitsIntoTwo(t *testing.T) {
	g := filledGrid(t, 16, 8, nil)
	l, err := chunk.NewLayout(16, 8, 8)
	require.NoError(t, err)

	a, b := chunk.Chunk{Col: 0, Row: 0}, chunk.Chunk{Col: 1, Row: 0}
	entrances, err := chunk.ScanBorder(g, l, a, b, chunk.DefaultThresholds())
	require.NoError(t, err)

	require.Len(t, entrances, 2)
	assert.Equal(t, grid.Coord{X: 7, Y: 0}, entrances[0].TileA)
	assert.Equal(t, grid.Coord{X: 7, Y: 7}, entrances[1].TileA)
}

func TestScanBorder_WallWithGapProducesOneEntrance(t *testing.T) {
	walls := map[grid.Coord]bool{}
	for y := 0; y < 8; y++ {
		if y == 4 {
			continue
		}
		walls[grid.Coord{X: 7, Y: y}] = true
		walls[grid.Coord{X: 8, Y: y}] = true
	}
	g := filledGrid(t, 16, 8, walls)
	l, err := chunk.NewLayout(16, 8, 8)
	require.NoError(t, err)

	a, b := chunk.Chunk{Col: 0, Row: 0}, chunk.Chunk{Col: 1, Row: 0}
	entrances, err := chunk.ScanBorder(g, l, a, b, chunk.DefaultThresholds())
	require.NoError(t, err)

	require.Len(t, entrances, 1)
	assert.Equal(t, grid.Coord{X: 7, Y: 4}, entrances[0].TileA)
	assert.Equal(t, grid.Coord{X: 8, Y: 4}, entrances[0].TileB)
}

func TestScanBorder_FullyWalledBorderHasNoEntrances(t *testing.T) {
	walls := map[grid.Coord]bool{}
	for y := 0; y < 8; y++ {
		walls[grid.Coord{X: 7, Y: y}] = true
	}
	g := filledGrid(t, 16, 8, walls)
	l, err := chunk.NewLayout(16, 8, 8)
	require.NoError(t, err)

	a, b := chunk.Chunk{Col: 0, Row: 0}, chunk.Chunk{Col: 1, Row: 0}
	entrances, err := chunk.ScanBorder(g, l, a, b, chunk.DefaultThresholds())
	require.NoError(t, err)
	assert.Empty(t, entrances)
}

func TestScanBorder_RejectsNonAdjacentChunks(t *testing.T) {
	g := filledGrid(t, 16, 16, nil)
	l, err := chunk.NewLayout(16, 16, 8)
	require.NoError(t, err)

	_, err = chunk.ScanBorder(g, l, chunk.Chunk{Col: 0, Row: 0}, chunk.Chunk{Col: 1, Row: 1}, chunk.DefaultThresholds())
	assert.ErrorIs(t, err, chunk.ErrNotAdjacent)
}
