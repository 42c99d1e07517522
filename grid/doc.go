// Package grid defines the read-only contract a caller implements to expose
// a two-dimensional tile map to the path cache: dimensions, a per-tile cost
// function, and the neighborhood topology used to step between tiles.
//
// The package owns no mutable state of its own. A Grid implementation must
// be stable between mutating calls on the cache that was built from it; the
// cache never writes back to it.
//
// Coordinates are integer pairs in [0,Width) x [0,Height). Cost is a
// non-negative integer-valued weight, with Impassable marking a tile that
// cannot be entered or left.
package grid
