package pathcache

import (
	"sync"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

// PathCache is the hierarchical abstraction over a grid.Grid: a partition
// into chunks, the abstract nodes and edges derived from their entrances,
// and the concrete grid and topology they were derived from.
//
// The zero value is not usable; construct with Build.
type PathCache struct {
	mu sync.RWMutex

	g      grid.Grid
	topo   grid.Topology
	layout chunk.Layout
	cfg    Config
	graph  *node.Graph
}

// RLock acquires a read lock, allowing concurrent queries to proceed
// alongside each other but not alongside a Build or TilesChanged call.
// Exported so the query package can hold the cache stable for the
// duration of a search without copying it.
func (pc *PathCache) RLock() { pc.mu.RLock() }

// RUnlock releases a lock acquired with RLock.
func (pc *PathCache) RUnlock() { pc.mu.RUnlock() }

// Grid returns the grid.Grid the cache was built from.
func (pc *PathCache) Grid() grid.Grid { return pc.g }

// Topology returns the neighborhood/diagonal-cost/corner-cutting policy
// the cache was built with.
func (pc *PathCache) Topology() grid.Topology { return pc.topo }

// ConfigValue returns the configuration the cache was built with.
func (pc *PathCache) ConfigValue() Config { return pc.cfg }

// Layout returns the chunk partition the cache was built with.
func (pc *PathCache) Layout() chunk.Layout { return pc.layout }

// Graph returns the abstract node graph. Callers outside this package
// (the query package) must hold RLock/Lock for the duration of any use,
// since the graph is mutated in place by TilesChanged.
func (pc *PathCache) Graph() *node.Graph { return pc.graph }

// Snapshot is a read-only summary of the cache's current structure,
// returned by Inspect for visualization and debugging adapters.
type Snapshot struct {
	Chunks    []chunk.Chunk
	ChunkSize int
	NodeCount int
	EdgeCount int
	Nodes     []node.Node
}

// Inspect returns a read-only view of the cache's chunks and nodes, plus
// the number of edges. Individual edges are not listed in the Snapshot.
// Safe to call concurrently with other Inspect calls.
//
// Complexity: O(V) where V is the current node count.
func (pc *PathCache) Inspect() Snapshot {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return Snapshot{
		Chunks:    pc.layout.Chunks(),
		ChunkSize: pc.cfg.ChunkSize,
		NodeCount: pc.graph.NodeCount(),
		EdgeCount: pc.graph.EdgeCount(),
		Nodes:     pc.graph.AllNodes(),
	}
}
