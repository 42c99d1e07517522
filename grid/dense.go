package grid

// DenseGrid is a reference Grid implementation backed by a deep-copied
// rectangular cost array, for callers that don't already have their own
// tile store. It deep-copies its input so the cache's reads stay stable
// regardless of what the caller does with the original slice afterward.
//
// Complexity: FromCosts is O(Width*Height) time and memory.
type DenseGrid struct {
	width, height int
	costs         [][]Cost
}

// FromCosts builds a DenseGrid from a non-empty, rectangular costs[y][x]
// array. Returns ErrEmptyGrid if costs has no rows or no columns, and
// ErrNonRectangular if any row length differs from the first.
func FromCosts(costs [][]Cost) (*DenseGrid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	copied := make([][]Cost, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]Cost, w)
		copy(copied[y], costs[y])
	}

	return &DenseGrid{width: w, height: h, costs: copied}, nil
}

// Width returns the grid's horizontal extent in tiles.
func (d *DenseGrid) Width() int { return d.width }

// Height returns the grid's vertical extent in tiles.
func (d *DenseGrid) Height() int { return d.height }

// CostAt returns the cost at c. Panics if c is out of bounds; callers
// should check InBounds first, as the Grid interface documents.
func (d *DenseGrid) CostAt(c Coord) Cost {
	return d.costs[c.Y][c.X]
}

// Set updates the cost of tile c, for callers driving PathCache.TilesChanged
// from a DenseGrid-backed map. Panics if c is out of bounds.
func (d *DenseGrid) Set(c Coord, cost Cost) {
	d.costs[c.Y][c.X] = cost
}
