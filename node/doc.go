// Package node implements the abstract graph the path cache searches:
// arena-allocated nodes identified by a stable opaque ID, and directed
// weighted edges between them.
//
// Nodes are created in batches when a chunk's entrances are (re)computed
// and destroyed only when that chunk is rebuilt; edges share the lifetime
// of their source node. IDs are never reused after a node is removed, so a
// stale ID captured before a rebuild is guaranteed to either still resolve
// to the same tile or resolve to nothing — it never silently refers to an
// unrelated node.
//
// Graph guards its vertex and edge storage with separate locks, following
// the split-lock pattern of a thread-safe adjacency-list graph: vertex
// lookups and edge/adjacency scans never block each other.
package node
