// Package pathcache builds and incrementally maintains a hierarchical
// abstraction over a grid.Grid: it partitions the grid into chunks,
// promotes chunk-border entrances to abstract nodes, and computes the
// weighted edges between them, so that the query package can answer
// many path queries per tick without re-running a full search over every
// tile.
//
// PathCache is single-owner: Build and TilesChanged require exclusive
// access. Inspect and the query package's FindPath/FindPaths take only a
// read lock, so any number of them may run concurrently with each other,
// but never alongside a Build or TilesChanged in flight.
//
// Construction:
//
//	pc, err := pathcache.Build(ctx, g, topo, pathcache.DefaultConfig())
//
// Mutation:
//
//	err := pc.TilesChanged(ctx, []grid.Coord{{X: 4, Y: 9}})
package pathcache
