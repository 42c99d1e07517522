package query

import (
	"context"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/intra"
	"github.com/tilehpa/pathcache/node"
	"github.com/tilehpa/pathcache/path"
	"github.com/tilehpa/pathcache/pathcache"
)

// FindPath returns a path from start to goal under pc's topology, or a nil
// Path and nil error if start and goal are not connected. A path found by
// the concrete search (every query when PerfectPaths is set, otherwise
// short same-chunk hops when AStarFallback is set) has the lowest cost; a
// path routed through the abstract graph passes through entrance nodes and
// may cost more than the optimum. start or goal outside the grid report
// ErrOutOfBounds; an impassable start or goal reports "no path", not an
// error.
//
// Holds pc's read lock for its duration: safe to call concurrently with
// other queries, but blocks a concurrent Build or TilesChanged.
func FindPath(ctx context.Context, pc *pathcache.PathCache, start, goal grid.Coord) (*path.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pc.RLock()
	defer pc.RUnlock()

	g, topo, cfg, layout := pc.Grid(), pc.Topology(), pc.ConfigValue(), pc.Layout()

	if !grid.InBounds(g, start) || !grid.InBounds(g, goal) {
		return nil, ErrOutOfBounds
	}
	if !grid.Passable(g, start) || !grid.Passable(g, goal) {
		return nil, nil
	}
	if start == goal {
		return path.New(start, goal, nil), nil
	}

	if cfg.PerfectPaths || (cfg.AStarFallback && sameChunkShortHop(layout, topo, start, goal)) {
		cost, trace, ok := concreteAStar(g, topo, cfg.Heuristic, start, goal)
		if !ok {
			return nil, nil
		}
		return path.New(start, goal, []path.Segment{{From: start, To: goal, Cost: cost, Trace: trace}}), nil
	}

	ov := newOverlay(pc)
	srcID := ov.resolveOrConnect(start)
	dstID := ov.resolveOrConnect(goal)
	if layout.ChunkAt(start) == layout.ChunkAt(goal) {
		ov.connectDirect(start, srcID, goal, dstID)
	}

	edges, ok := abstractAStar(ov, srcID, dstID, cfg.Heuristic, topo.DiagonalCost)
	if !ok {
		return nil, nil
	}

	return path.New(start, goal, segmentsFromEdges(pc, ov, edges)), nil
}

// FindPaths returns a path from start to every reachable tile in goals,
// with the same cost guarantees as FindPath: exact for goals answered by
// the concrete search, possibly above the optimum for goals reached
// through the abstract graph. A goal with no path from start, or outside
// the grid's passable area, is simply absent from the result; only an out-of-bounds
// coordinate is reported as an error.
//
// Holds pc's read lock for its duration, same as FindPath.
func FindPaths(ctx context.Context, pc *pathcache.PathCache, start grid.Coord, goals []grid.Coord) (map[grid.Coord]*path.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pc.RLock()
	defer pc.RUnlock()

	g, topo, cfg, layout := pc.Grid(), pc.Topology(), pc.ConfigValue(), pc.Layout()

	if !grid.InBounds(g, start) {
		return nil, ErrOutOfBounds
	}
	for _, goal := range goals {
		if !grid.InBounds(g, goal) {
			return nil, ErrOutOfBounds
		}
	}

	out := make(map[grid.Coord]*path.Path, len(goals))
	if !grid.Passable(g, start) {
		return out, nil
	}

	ov := newOverlay(pc)
	srcID := ov.resolveOrConnect(start)

	tileOf := make(map[node.ID]grid.Coord)
	remaining := make(map[node.ID]struct{})
	for _, goal := range goals {
		if !grid.Passable(g, goal) {
			continue
		}
		if goal == start {
			out[goal] = path.New(start, goal, nil)
			continue
		}
		if cfg.PerfectPaths || (cfg.AStarFallback && sameChunkShortHop(layout, topo, start, goal)) {
			if cost, trace, ok := concreteAStar(g, topo, cfg.Heuristic, start, goal); ok {
				out[goal] = path.New(start, goal, []path.Segment{{From: start, To: goal, Cost: cost, Trace: trace}})
			}
			continue
		}

		id := ov.resolveOrConnect(goal)
		if layout.ChunkAt(start) == layout.ChunkAt(goal) {
			ov.connectDirect(start, srcID, goal, id)
		}
		tileOf[id] = goal
		remaining[id] = struct{}{}
	}

	if len(remaining) > 0 {
		for id, edges := range abstractDijkstra(ov, srcID, remaining) {
			goal := tileOf[id]
			out[goal] = path.New(start, goal, segmentsFromEdges(pc, ov, edges))
		}
	}

	return out, nil
}

// sameChunkShortHop reports whether start and goal lie in the same chunk
// and are close enough together that paying the abstraction overhead
// isn't worth it, per the distance measure matching topo's neighborhood.
func sameChunkShortHop(layout chunk.Layout, topo grid.Topology, start, goal grid.Coord) bool {
	if layout.ChunkAt(start) != layout.ChunkAt(goal) {
		return false
	}

	dx, dy := start.X-goal.X, start.Y-goal.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	dist := dx + dy
	if topo.Neighborhood == grid.Eight {
		dist = dx
		if dy > dist {
			dist = dy
		}
	}

	return dist < 2*layout.Size
}

// segmentsFromEdges converts a sequence of abstract edges into path
// segments, resolving each endpoint's tile through ov. An edge with no
// cached trace (CachePaths was off when it was built) gets a Resolve
// closure that recomputes it with a scoped intra-chunk solve on demand,
// per the lazy-refinement behavior documented on path.Segment; a
// bridge edge's trace is always the trivial single step into its
// destination tile.
func segmentsFromEdges(pc *pathcache.PathCache, ov *overlay, edges []node.Edge) []path.Segment {
	segs := make([]path.Segment, len(edges))
	for i, e := range edges {
		from, _ := ov.tile(e.From)
		to, _ := ov.tile(e.To)

		seg := path.Segment{From: from, To: to, Cost: e.Weight}
		switch {
		case e.Trace != nil:
			seg.Trace = e.Trace
		case e.Kind == node.Bridge:
			seg.Trace = grid.Trace{to}
		default:
			f, t := from, to
			seg.Resolve = func() grid.Trace { return recomputeIntraTrace(pc, f, t) }
		}
		segs[i] = seg
	}
	return segs
}

// recomputeIntraTrace rebuilds the concrete walk for one intra-chunk edge
// by re-running the intra-chunk solver scoped to from's chunk, the same
// computation the builder used when it first derived the edge.
func recomputeIntraTrace(pc *pathcache.PathCache, from, to grid.Coord) grid.Trace {
	ch := pc.Layout().ChunkAt(from)
	minX, minY, maxX, maxY := pc.Layout().Bounds(ch)
	box := intra.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}

	results := intra.Solve(pc.Grid(), pc.Topology(), box, from, []grid.Coord{to}, true)
	if r, ok := results[to]; ok {
		return r.Trace
	}
	return nil
}
