package node

import (
	"errors"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
)

// Sentinel errors for the node package.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node ID.
	ErrNodeNotFound = errors.New("node: node not found")
)

// ID uniquely and permanently identifies an abstract node within a Graph's
// lifetime. IDs are issued from a monotonic counter and never reused.
type ID uint64

// EdgeKind distinguishes an intra-chunk edge (computed by the intra-chunk
// solver) from a bridge edge (the zero-or-one-step link between the two
// mirrored nodes of a shared entrance).
type EdgeKind int

const (
	// Intra is an edge between two nodes owned by the same chunk.
	Intra EdgeKind = iota
	// Bridge is the edge linking a pair of mirrored nodes across a chunk
	// border.
	Bridge
)

// Node is a tile promoted to a vertex in the abstract graph.
type Node struct {
	ID    ID
	Tile  grid.Coord
	Chunk chunk.Chunk
}

// Edge is a directed, weighted connection from one node to another.
type Edge struct {
	From, To ID
	Weight   grid.Cost
	Kind     EdgeKind
	Trace    grid.Trace
}
