package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilehpa/pathcache/grid"
)

func TestFromCosts_RejectsEmptyAndRagged(t *testing.T) {
	_, err := grid.FromCosts(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromCosts([][]grid.Cost{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromCosts([][]grid.Cost{{1, 1}, {1}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestDenseGrid_CostAtAndBounds(t *testing.T) {
	g, err := grid.FromCosts([][]grid.Cost{
		{1, 1, grid.Impassable},
		{1, grid.Impassable, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, grid.Cost(1), g.CostAt(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, grid.Impassable, g.CostAt(grid.Coord{X: 2, Y: 0}))

	assert.True(t, grid.InBounds(g, grid.Coord{X: 2, Y: 1}))
	assert.False(t, grid.InBounds(g, grid.Coord{X: 3, Y: 0}))
	assert.False(t, grid.InBounds(g, grid.Coord{X: 0, Y: -1}))

	assert.True(t, grid.Passable(g, grid.Coord{X: 0, Y: 0}))
	assert.False(t, grid.Passable(g, grid.Coord{X: 2, Y: 0}))
	assert.False(t, grid.Passable(g, grid.Coord{X: 3, Y: 0}))
}

func TestDenseGrid_FromCostsDeepCopies(t *testing.T) {
	src := [][]grid.Cost{{1, 1}, {1, 1}}
	g, err := grid.FromCosts(src)
	require.NoError(t, err)

	src[0][0] = grid.Impassable
	assert.Equal(t, grid.Cost(1), g.CostAt(grid.Coord{X: 0, Y: 0}))
}

func TestDenseGrid_Set(t *testing.T) {
	g, err := grid.FromCosts([][]grid.Cost{{1, 1}})
	require.NoError(t, err)

	g.Set(grid.Coord{X: 1, Y: 0}, grid.Impassable)
	assert.Equal(t, grid.Impassable, g.CostAt(grid.Coord{X: 1, Y: 0}))
}

func TestNeighbors_FourVsEight(t *testing.T) {
	g, err := grid.FromCosts([][]grid.Cost{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	center := grid.Coord{X: 1, Y: 1}
	four := grid.Neighbors(g, grid.Topology{Neighborhood: grid.Four}, center)
	assert.Len(t, four, 4)

	eight := grid.Neighbors(g, grid.Topology{Neighborhood: grid.Eight, DiagonalCost: 1}, center)
	assert.Len(t, eight, 8)
}

func TestNeighbors_CornerCutting(t *testing.T) {
	// Walls directly above and to the right of center, so the NE diagonal
	// step has both flanking orthogonal tiles blocked.
	g, err := grid.FromCosts([][]grid.Cost{
		{1, grid.Impassable, 1},
		{grid.Impassable, 1, grid.Impassable},
		{1, 1, 1},
	})
	require.NoError(t, err)

	center := grid.Coord{X: 1, Y: 1}
	topo := grid.Topology{Neighborhood: grid.Eight, DiagonalCost: 2, CornerCutting: grid.CornerForbidden}

	steps := grid.Neighbors(g, topo, center)
	for _, s := range steps {
		assert.NotEqual(t, grid.Coord{X: 2, Y: 0}, s.To, "NE corner-cut should be forbidden")
	}

	topo.CornerCutting = grid.CornerAllowed
	steps = grid.Neighbors(g, topo, center)
	var sawNE bool
	for _, s := range steps {
		if s.To == (grid.Coord{X: 2, Y: 0}) {
			sawNE = true
			assert.Equal(t, grid.Cost(2), s.Cost)
		}
	}
	assert.True(t, sawNE, "NE corner-cut should be allowed once CornerCutting=CornerAllowed")
}

func TestEstimate(t *testing.T) {
	a, b := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 4}

	assert.Equal(t, grid.Cost(7), grid.Estimate(grid.Manhattan, a, b, 1))
	assert.Equal(t, grid.Cost(4), grid.Estimate(grid.Chebyshev, a, b, 1))
	// Octile: 1 diagonal step per unit of the smaller delta, plus the
	// remaining orthogonal distance: (4-3) + 3*diagonalCost.
	assert.Equal(t, grid.Cost(1)+grid.Cost(3)*2, grid.Estimate(grid.Octile, a, b, 2))
}
