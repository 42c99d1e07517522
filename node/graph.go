package node

import (
	"sort"
	"sync"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
)

// Graph is the arena-backed storage for abstract nodes and their outgoing
// edges. The zero value is not usable; construct with NewGraph.
type Graph struct {
	muNodes sync.RWMutex // guards nodes, byTile, byChunk
	muEdges sync.RWMutex // guards adjacency

	nextID uint64

	nodes   map[ID]*Node
	byTile  map[grid.Coord]ID
	byChunk map[chunk.Chunk]map[ID]struct{}

	adjacency map[ID][]Edge // outgoing edges, From==key, in insertion order
}

// NewGraph returns an empty abstract node graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[ID]*Node),
		byTile:    make(map[grid.Coord]ID),
		byChunk:   make(map[chunk.Chunk]map[ID]struct{}),
		adjacency: make(map[ID][]Edge),
	}
}

// AddNode creates a new node at tile, owned by ch, and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(tile grid.Coord, ch chunk.Chunk) ID {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	g.nextID++
	id := ID(g.nextID)
	g.nodes[id] = &Node{ID: id, Tile: tile, Chunk: ch}
	g.byTile[tile] = id
	if g.byChunk[ch] == nil {
		g.byChunk[ch] = make(map[ID]struct{})
	}
	g.byChunk[ch][id] = struct{}{}

	return id
}

// PeekNextID returns the ID that the next call to AddNode would assign,
// without reserving or allocating it. Callers building a scoped overlay on
// top of the graph use this to pick IDs for temporary nodes that are
// guaranteed not to collide with any node the graph has issued so far.
func (g *Graph) PeekNextID() ID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return ID(g.nextID + 1)
}

// Node returns the node for id, or (nil, false) if it doesn't exist.
func (g *Graph) Node(id ID) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// NodeAt returns the ID of the node at tile, if one exists.
func (g *Graph) NodeAt(tile grid.Coord) (ID, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	id, ok := g.byTile[tile]
	return id, ok
}

// NodesIn returns the IDs of every node owned by ch, sorted ascending for
// deterministic iteration.
func (g *Graph) NodesIn(ch chunk.Chunk) []ID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	set := g.byChunk[ch]
	out := make([]ID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AddEdge appends a directed edge from -> to with the given weight and
// kind. Edges are appended in call order, which callers should drive in
// deterministic (e.g. sorted node-id) order to keep the graph's structure
// reproducible across rebuilds.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to ID, weight grid.Cost, kind EdgeKind, trace grid.Trace) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Kind: kind, Trace: trace})
}

// Neighbors returns the outgoing edges of id, in insertion order.
func (g *Graph) Neighbors(id ID) []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	edges := g.adjacency[id]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// RemoveChunkNodes discards every node owned by ch along with their
// outgoing edges, and returns the set of removed IDs so the caller can
// scrub dangling bridge edges pointing at them from neighboring chunks.
//
// Complexity: O(k + e) where k is the number of nodes owned by ch and e is
// the number of their outgoing edges.
func (g *Graph) RemoveChunkNodes(ch chunk.Chunk) map[ID]struct{} {
	return g.RemoveNodes(g.NodesIn(ch))
}

// RemoveNodes discards the given nodes, wherever they live, along with
// their outgoing edges, and returns the set actually removed (ids that
// don't exist are ignored).
//
// Complexity: O(len(ids) + e) where e is the number of their outgoing
// edges.
func (g *Graph) RemoveNodes(ids []ID) map[ID]struct{} {
	g.muNodes.Lock()
	removed := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			continue
		}
		removed[id] = struct{}{}
		delete(g.nodes, id)
		delete(g.byTile, n.Tile)
		if set := g.byChunk[n.Chunk]; set != nil {
			delete(set, id)
			if len(set) == 0 {
				delete(g.byChunk, n.Chunk)
			}
		}
	}
	g.muNodes.Unlock()

	g.muEdges.Lock()
	for id := range removed {
		delete(g.adjacency, id)
	}
	g.muEdges.Unlock()

	return removed
}

// RemoveEdgesTo deletes every outgoing edge whose destination is in ids,
// across the whole graph. Used by the incremental updater to scrub bridge
// edges left dangling by a neighboring chunk's rebuild.
//
// Complexity: O(V + E) where V and E are the graph's current node and edge
// counts.
func (g *Graph) RemoveEdgesTo(ids map[ID]struct{}) {
	if len(ids) == 0 {
		return
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for from, edges := range g.adjacency {
		kept := edges[:0]
		for _, e := range edges {
			if _, gone := ids[e.To]; gone {
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(g.adjacency, from)
		} else {
			g.adjacency[from] = kept
		}
	}
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of live directed edges.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}
	return n
}

// AllNodes returns every live node, sorted by ID, for read-only inspection.
func (g *Graph) AllNodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
