package intra

import "github.com/tilehpa/pathcache/grid"

// Box is an inclusive tile-coordinate bounding box. The search never steps
// outside it.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether c lies within b.
func (b Box) Contains(c grid.Coord) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Result is the outcome of the search for one target tile.
type Result struct {
	Dist  grid.Cost
	Trace grid.Trace // nil unless cachePaths was requested
}
