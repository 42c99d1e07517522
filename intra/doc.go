// Package intra runs Dijkstra's algorithm over the concrete tiles of a
// single chunk, computing best-cost distances (and optionally predecessor
// traces) between a set of source tiles and every other tile in the same
// set.
//
// The search is restricted to the chunk's bounding box: it never steps
// outside it, even when the underlying grid.Grid has passable tiles there.
// This is what lets the builder and the incremental updater solve chunks
// independently of one another. Unreachable targets are simply absent from
// the result, and self-pairs are never emitted, so the builder installs no
// self-edges and no edges to targets unreachable inside the chunk.
package intra
