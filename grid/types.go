package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrEmptyGrid indicates a grid with zero width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside [0,Width) x [0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord is a tile coordinate (x, y) in [0,Width) x [0,Height).
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Cost is a non-negative integer weight on a tile or a step between tiles.
// Sums of Cost along a bounded path are expected to fit in int64.
type Cost int64

// Impassable is the sentinel cost marking a non-traversable tile.
// All other costs participate in sums and must be >= 0.
const Impassable Cost = -1

// Neighborhood selects the topology used to step between tiles.
type Neighborhood int

const (
	// Four restricts moves to the four orthogonal directions.
	Four Neighborhood = iota
	// Eight additionally allows the four diagonal directions.
	Eight
)

// CornerCutting controls whether a diagonal step is allowed when both
// flanking orthogonal tiles are impassable.
type CornerCutting int

const (
	// CornerAllowed permits diagonal steps regardless of flanking tiles.
	CornerAllowed CornerCutting = iota
	// CornerForbidden rejects a diagonal step unless at least one flanking
	// orthogonal tile is traversable.
	CornerForbidden
)

// Heuristic selects the admissible distance estimate used by the query
// engine's A* search. It should match the grid's Neighborhood: Manhattan
// for Four, Octile or Chebyshev for Eight.
type Heuristic int

const (
	// Manhattan sums the absolute coordinate deltas. Admissible for Four.
	Manhattan Heuristic = iota
	// Octile accounts for the cheaper diagonal step. Admissible for Eight.
	Octile
	// Chebyshev takes the larger coordinate delta. Admissible for Eight
	// when the diagonal cost equals the orthogonal cost.
	Chebyshev
)

// Topology bundles the neighborhood, diagonal-move cost, and corner-cutting
// policy a caller chooses at construction time. DiagonalCost is only
// consulted when Neighborhood is Eight.
type Topology struct {
	Neighborhood  Neighborhood
	DiagonalCost  Cost
	CornerCutting CornerCutting
}

// Grid is the read-only view of a tile map the cache is built from.
// Implementations must be safe for concurrent reads and stable between
// mutating calls on any cache built from them.
type Grid interface {
	// Width returns the grid's horizontal extent in tiles.
	Width() int
	// Height returns the grid's vertical extent in tiles.
	Height() int
	// CostAt returns the cost of entering the tile at c, or Impassable.
	// Behavior is undefined for out-of-bounds coordinates; callers should
	// check InBounds first.
	CostAt(c Coord) Cost
}

// Trace is a concrete tile-by-tile walk, stored in travel order (first
// element is the segment's source-adjacent tile, not the source itself).
// A nil Trace means no walk was cached; it must be recomputed on demand.
type Trace []Coord

// InBounds reports whether c lies within [0,Width) x [0,Height) for g.
func InBounds(g Grid, c Coord) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// Passable reports whether the tile at c is traversable, i.e. in bounds
// and not Impassable.
func Passable(g Grid, c Coord) bool {
	return InBounds(g, c) && g.CostAt(c) != Impassable
}
