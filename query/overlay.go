package query

import (
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/intra"
	"github.com/tilehpa/pathcache/node"
	"github.com/tilehpa/pathcache/pathcache"
)

// overlay layers temporary nodes and edges on top of a PathCache's node
// graph for the duration of one query, without ever calling a mutating
// method on the underlying graph. Temporary IDs are reserved from the
// graph's own counter at construction time, so they can never collide
// with a node the graph has actually issued.
type overlay struct {
	pc    *pathcache.PathCache
	extra map[node.ID][]node.Edge
	tiles map[node.ID]grid.Coord
	next  node.ID
}

func newOverlay(pc *pathcache.PathCache) *overlay {
	return &overlay{
		pc:    pc,
		extra: make(map[node.ID][]node.Edge),
		tiles: make(map[node.ID]grid.Coord),
		next:  pc.Graph().PeekNextID(),
	}
}

// reserve returns a fresh temporary ID, distinct from every other ID this
// overlay has handed out and from every ID the underlying graph has ever
// issued.
func (o *overlay) reserve() node.ID {
	id := o.next
	o.next++
	return id
}

func (o *overlay) addEdge(from, to node.ID, weight grid.Cost, trace grid.Trace) {
	o.extra[from] = append(o.extra[from], node.Edge{From: from, To: to, Weight: weight, Kind: node.Intra, Trace: trace})
}

// neighbors returns the outgoing edges of id: the persistent graph's own
// edges, if id is a real node, plus whatever this overlay has layered on.
func (o *overlay) neighbors(id node.ID) []node.Edge {
	var out []node.Edge
	if _, temp := o.tiles[id]; !temp {
		out = append(out, o.pc.Graph().Neighbors(id)...)
	}
	out = append(out, o.extra[id]...)
	return out
}

// tile resolves id's tile, checking temporary nodes before the persistent
// graph.
func (o *overlay) tile(id node.ID) (grid.Coord, bool) {
	if t, ok := o.tiles[id]; ok {
		return t, true
	}
	n, ok := o.pc.Graph().Node(id)
	if !ok {
		return grid.Coord{}, false
	}
	return n.Tile, true
}

// resolveOrConnect returns the ID of the existing abstract node at tile,
// if one happens to sit exactly there, or otherwise reserves a temporary
// ID and connects it to every node owned by tile's chunk via a scoped
// intra-chunk solve, mirroring how the builder derives intra-chunk edges.
func (o *overlay) resolveOrConnect(tile grid.Coord) node.ID {
	if id, ok := o.pc.Graph().NodeAt(tile); ok {
		return id
	}

	id := o.reserve()
	o.tiles[id] = tile

	ch := o.pc.Layout().ChunkAt(tile)
	owned := o.pc.Graph().NodesIn(ch)
	if len(owned) == 0 {
		return id
	}

	tiles := make([]grid.Coord, 0, len(owned))
	ownerOf := make(map[grid.Coord]node.ID, len(owned))
	for _, oid := range owned {
		n, ok := o.pc.Graph().Node(oid)
		if !ok {
			continue
		}
		tiles = append(tiles, n.Tile)
		ownerOf[n.Tile] = oid
	}

	minX, minY, maxX, maxY := o.pc.Layout().Bounds(ch)
	box := intra.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	results := intra.Solve(o.pc.Grid(), o.pc.Topology(), box, tile, tiles, true)

	for t, r := range results {
		owner := ownerOf[t]
		o.addEdge(id, owner, r.Dist, r.Trace)
		// A step costs the tile it enters (see grid.Neighbors), so the walk
		// back from owner can cost differently; solve it on its own.
		back := intra.Solve(o.pc.Grid(), o.pc.Topology(), box, t, []grid.Coord{tile}, true)
		if rb, ok := back[tile]; ok {
			o.addEdge(owner, id, rb.Dist, rb.Trace)
		}
	}

	return id
}

// connectDirect adds a direct edge between two temporary nodes known to
// share a chunk, bypassing any abstract route through that chunk's
// entrances entirely. Without this, a pair of tiles in a chunk with no
// entrances to the rest of the graph (or whose only route back out and
// in again is needlessly roundabout) would incorrectly report no path
// even though a plain concrete search would find one.
func (o *overlay) connectDirect(aTile grid.Coord, aID node.ID, bTile grid.Coord, bID node.ID) {
	ch := o.pc.Layout().ChunkAt(aTile)
	minX, minY, maxX, maxY := o.pc.Layout().Bounds(ch)
	box := intra.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}

	results := intra.Solve(o.pc.Grid(), o.pc.Topology(), box, aTile, []grid.Coord{bTile}, true)
	r, ok := results[bTile]
	if !ok {
		return
	}
	o.addEdge(aID, bID, r.Dist, r.Trace)
	back := intra.Solve(o.pc.Grid(), o.pc.Topology(), box, bTile, []grid.Coord{aTile}, true)
	if rb, ok := back[aTile]; ok {
		o.addEdge(bID, aID, rb.Dist, rb.Trace)
	}
}

// reverseTrace rebuilds the trace for the opposite direction of a walk
// whose forward trace (excluding its source, ending at its target) was
// fwd: it drops the old target, reverses what's left, and appends the old
// source as the new final waypoint.
func reverseTrace(source grid.Coord, fwd grid.Trace) grid.Trace {
	if len(fwd) == 0 {
		return nil
	}
	rev := make(grid.Trace, len(fwd))
	for i, c := range fwd[:len(fwd)-1] {
		rev[len(fwd)-2-i] = c
	}
	rev[len(fwd)-1] = source
	return rev
}
