package pathcache

import (
	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/intra"
	"github.com/tilehpa/pathcache/node"
)

// solveChunk runs the intra-chunk solver from every node owned by ch to
// every other node owned by ch, installing one directed edge per reachable
// pair. Safe to call concurrently for distinct chunks: the only shared
// state it touches is the node.Graph, which guards itself.
func (pc *PathCache) solveChunk(ch chunk.Chunk) {
	ids := pc.graph.NodesIn(ch)
	if len(ids) < 2 {
		return
	}

	tileByID := make(map[node.ID]grid.Coord, len(ids))
	idByTile := make(map[grid.Coord]node.ID, len(ids))
	tiles := make([]grid.Coord, 0, len(ids))
	for _, id := range ids {
		n, ok := pc.graph.Node(id)
		if !ok {
			continue
		}
		tileByID[id] = n.Tile
		idByTile[n.Tile] = id
		tiles = append(tiles, n.Tile)
	}

	minX, minY, maxX, maxY := pc.layout.Bounds(ch)
	box := intra.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}

	for _, id := range ids {
		source := tileByID[id]
		targets := make([]grid.Coord, 0, len(tiles)-1)
		for _, t := range tiles {
			if t != source {
				targets = append(targets, t)
			}
		}

		results := intra.Solve(pc.g, pc.topo, box, source, targets, pc.cfg.CachePaths)
		for _, t := range tiles {
			if t == source {
				continue
			}
			r, ok := results[t]
			if !ok {
				continue
			}
			pc.graph.AddEdge(id, idByTile[t], r.Dist, node.Intra, r.Trace)
		}
	}
}
