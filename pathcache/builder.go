package pathcache

import (
	"context"
	"fmt"
	"sort"

	"github.com/tilehpa/pathcache/chunk"
	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

// Build sweeps every chunk of g, extracting entrances between neighboring
// chunks and solving the intra-chunk edges between the abstract nodes they
// produce, and returns a fully populated PathCache.
//
// Returns ErrInvalidGrid if g reports non-positive dimensions, and
// ErrInvalidConfig if cfg is structurally invalid for topo.
//
// Complexity: O(C*S^2*log(S^2)) where C is the chunk count and S is
// cfg.ChunkSize, dominated by the intra-chunk solver (see package intra).
func Build(ctx context.Context, g grid.Grid, topo grid.Topology, cfg Config) (*PathCache, error) {
	if g.Width() <= 0 || g.Height() <= 0 {
		return nil, ErrInvalidGrid
	}
	if err := cfg.validate(topo); err != nil {
		return nil, err
	}

	layout, err := chunk.NewLayout(g.Width(), g.Height(), cfg.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("pathcache: %w", ErrInvalidConfig)
	}

	pc := &PathCache{
		g:      g,
		topo:   topo,
		layout: layout,
		cfg:    cfg,
		graph:  node.NewGraph(),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entrances := scanAllBorders(g, layout, cfg)
	installEntrances(pc.graph, g, entrances)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunks := layout.Chunks()
	forEach(len(chunks), cfg.Parallel, func(i int) {
		pc.solveChunk(chunks[i])
	})

	return pc, nil
}

// scanAllBorders collects every entrance in the grid, in deterministic
// row-major-chunk, right-then-down-neighbor order regardless of whether
// the scan itself ran in parallel.
func scanAllBorders(g grid.Grid, layout chunk.Layout, cfg Config) []chunk.Entrance {
	chunks := layout.Chunks()
	thresholds := chunk.Thresholds{SplitThreshold: cfg.EntranceSplit}

	type pair struct {
		a, b  chunk.Chunk
		order int
	}
	var pairs []pair
	order := 0
	for _, c := range chunks {
		for _, n := range layout.BorderNeighbors(c) {
			pairs = append(pairs, pair{a: c, b: n, order: order})
			order++
		}
	}

	results := make([][]chunk.Entrance, len(pairs))
	forEach(len(pairs), cfg.Parallel, func(i int) {
		es, _ := chunk.ScanBorder(g, layout, pairs[i].a, pairs[i].b, thresholds)
		results[i] = es
	})

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].order < pairs[j].order })

	var out []chunk.Entrance
	for i := range pairs {
		out = append(out, results[i]...)
	}
	return out
}

// installEntrances creates the mirrored node pair and bridge edges for
// every entrance, in scan order, so node IDs are assigned deterministically
// for a fixed grid and config.
func installEntrances(ng *node.Graph, g grid.Grid, entrances []chunk.Entrance) {
	for _, e := range entrances {
		idA := ng.AddNode(e.TileA, e.ChunkA)
		idB := ng.AddNode(e.TileB, e.ChunkB)
		// A step across the border is always orthogonal, so its cost is
		// simply the cost of entering the destination tile.
		ng.AddEdge(idA, idB, g.CostAt(e.TileB), node.Bridge, nil)
		ng.AddEdge(idB, idA, g.CostAt(e.TileA), node.Bridge, nil)
	}
}
