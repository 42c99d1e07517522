package pathcache

import (
	"context"
	"sort"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

// TilesChanged recomputes every abstract node and edge whose correctness
// depends on the tiles in coords, leaving the rest of the cache untouched.
// It takes the cache's exclusive lock for its duration, so queries and
// other updates block until it returns.
//
// coords are validated against the grid's bounds before any mutation
// begins: a call that returns an error leaves the cache exactly as it was.
// There is no partial application.
//
// Complexity: O(k*S^2*log(S^2)) where k is the number of chunks touched,
// directly or as a border neighbor of a touched chunk, and S is
// cfg.ChunkSize.
func (pc *PathCache) TilesChanged(ctx context.Context, coords []grid.Coord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(coords) == 0 {
		return nil
	}
	for _, c := range coords {
		if !grid.InBounds(pc.g, c) {
			return ErrOutOfBounds
		}
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	dirty := make(map[chunk.Chunk]struct{}, len(coords))
	for _, c := range coords {
		dirty[pc.layout.ChunkAt(c)] = struct{}{}
	}

	touched := make(map[chunk.Chunk]struct{}, len(dirty)*2)
	for ch := range dirty {
		touched[ch] = struct{}{}
	}
	for ch := range dirty {
		for _, nb := range pc.layout.AllNeighbors(ch) {
			touched[nb] = struct{}{}
		}
	}

	removed := make(map[node.ID]struct{})
	for ch := range touched {
		for id := range pc.graph.RemoveChunkNodes(ch) {
			removed[id] = struct{}{}
		}
	}
	pc.graph.RemoveEdgesTo(removed)

	resolve := make(map[chunk.Chunk]struct{}, len(touched))
	for ch := range touched {
		resolve[ch] = struct{}{}
	}

	entrances := pc.rescanBorders(touched)

	// A border's far side may still hold a stale node left over from
	// before the rescan, if its chunk wasn't itself wholesale-discarded
	// above (a neighbor two hops from any changed tile). An entrance's
	// position on a border can shift even though that side's own tiles
	// never changed, so clear the stale node and fold its chunk back
	// into the solve set.
	var stale []node.ID
	for _, e := range entrances {
		if id, ok := pc.graph.NodeAt(e.TileA); ok {
			stale = append(stale, id)
			resolve[e.ChunkA] = struct{}{}
		}
		if id, ok := pc.graph.NodeAt(e.TileB); ok {
			stale = append(stale, id)
			resolve[e.ChunkB] = struct{}{}
		}
	}
	if len(stale) > 0 {
		pc.graph.RemoveEdgesTo(pc.graph.RemoveNodes(stale))
	}

	installEntrances(pc.graph, pc.g, entrances)

	resolveList := sortedChunks(resolve)
	forEach(len(resolveList), pc.cfg.Parallel, func(i int) {
		pc.solveChunk(resolveList[i])
	})

	return nil
}

// rescanBorders re-runs the entrance extractor on every border between a
// touched chunk and any of its neighbors, each border exactly once, and
// returns the combined entrance list in a deterministic order.
func (pc *PathCache) rescanBorders(touched map[chunk.Chunk]struct{}) []chunk.Entrance {
	thresholds := chunk.Thresholds{SplitThreshold: pc.cfg.EntranceSplit}
	seen := make(map[[2]chunk.Chunk]struct{})

	var entrances []chunk.Entrance
	for _, ch := range sortedChunks(touched) {
		for _, nb := range pc.layout.AllNeighbors(ch) {
			a, b := canonicalPair(ch, nb)
			key := [2]chunk.Chunk{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			es, err := chunk.ScanBorder(pc.g, pc.layout, a, b, thresholds)
			if err != nil {
				continue
			}
			entrances = append(entrances, es...)
		}
	}
	return entrances
}

// canonicalPair orders two adjacent chunks (a, b) the way ScanBorder
// expects: a to the left of or above b.
func canonicalPair(x, y chunk.Chunk) (chunk.Chunk, chunk.Chunk) {
	switch {
	case y.Col == x.Col+1 && y.Row == x.Row:
		return x, y
	case x.Col == y.Col+1 && x.Row == y.Row:
		return y, x
	case y.Row == x.Row+1 && y.Col == x.Col:
		return x, y
	default:
		return y, x
	}
}

// sortedChunks returns the members of set in row-major order, for
// deterministic iteration independent of map ordering.
func sortedChunks(set map[chunk.Chunk]struct{}) []chunk.Chunk {
	out := make([]chunk.Chunk, 0, len(set))
	for ch := range set {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
