package grid

// fourOffsets and eightOffsets are precomputed neighbor deltas, following
// the same precomputed-offsets pattern gridgraph uses to avoid branching
// in hot adjacency loops.
var (
	fourOffsets  = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	eightOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Step is one legal move out of a tile: the destination and its cost.
type Step struct {
	To   Coord
	Cost Cost
}

// isDiagonal reports whether offset (dx, dy) is a diagonal move.
func isDiagonal(dx, dy int) bool {
	return dx != 0 && dy != 0
}

// Neighbors enumerates the legal steps out of tile c under topo, given g's
// costs. A step is legal when the destination is in bounds and passable,
// and — for diagonal moves under CornerForbidden — at least one of the two
// orthogonal tiles flanking the diagonal is passable. Step.Cost is the
// destination tile's cost for orthogonal moves, or topo.DiagonalCost for
// diagonal moves.
//
// Complexity: O(1), bounded by 4 or 8 candidate offsets.
func Neighbors(g Grid, topo Topology, c Coord) []Step {
	var offsets [][2]int
	if topo.Neighborhood == Eight {
		offsets = eightOffsets[:]
	} else {
		offsets = fourOffsets[:]
	}

	steps := make([]Step, 0, len(offsets))
	for _, d := range offsets {
		dst := c.Add(d[0], d[1])
		if !Passable(g, dst) {
			continue
		}
		if isDiagonal(d[0], d[1]) && topo.CornerCutting == CornerForbidden {
			flankA := c.Add(d[0], 0)
			flankB := c.Add(0, d[1])
			if !Passable(g, flankA) && !Passable(g, flankB) {
				continue
			}
		}
		var stepCost Cost
		if isDiagonal(d[0], d[1]) {
			stepCost = topo.DiagonalCost
		} else {
			stepCost = g.CostAt(dst)
		}
		steps = append(steps, Step{To: dst, Cost: stepCost})
	}

	return steps
}
