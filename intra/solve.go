package intra

import (
	"container/heap"

	"github.com/tilehpa/pathcache/grid"
)

// Solve runs a single-source Dijkstra from source over the tiles of box,
// stopping as soon as every coordinate in targets has been settled or the
// frontier empties. It returns a Result for each target actually reached;
// source itself and unreachable targets are absent from the result, and
// the search never steps outside box.
//
// Complexity: O(k log k) where k = (box width * box height), bounded by
// the chunk's tile count.
func Solve(g grid.Grid, topo grid.Topology, box Box, source grid.Coord, targets []grid.Coord, cachePaths bool) map[grid.Coord]Result {
	remaining := make(map[grid.Coord]struct{}, len(targets))
	for _, t := range targets {
		if t != source {
			remaining[t] = struct{}{}
		}
	}

	dist := map[grid.Coord]grid.Cost{source: 0}
	visited := map[grid.Coord]bool{}
	var prev map[grid.Coord]grid.Coord
	if cachePaths {
		prev = make(map[grid.Coord]grid.Coord)
	}

	pq := make(coordPQ, 0, box.MaxX-box.MinX+box.MaxY-box.MinY+2)
	heap.Init(&pq)
	heap.Push(&pq, &coordItem{coord: source, dist: 0})

	results := make(map[grid.Coord]Result)

	for pq.Len() > 0 && len(remaining) > 0 {
		item := heap.Pop(&pq).(*coordItem)
		u, d := item.coord, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		if _, wanted := remaining[u]; wanted {
			var trace grid.Trace
			if cachePaths {
				trace = reconstruct(prev, source, u)
			}
			results[u] = Result{Dist: d, Trace: trace}
			delete(remaining, u)
		}

		for _, step := range grid.Neighbors(g, topo, u) {
			v := step.To
			if !box.Contains(v) {
				continue
			}
			nd := d + step.Cost
			if cur, ok := dist[v]; ok && nd >= cur {
				continue
			}
			dist[v] = nd
			if prev != nil {
				prev[v] = u
			}
			heap.Push(&pq, &coordItem{coord: v, dist: nd})
		}
	}

	return results
}

// reconstruct walks prev back from target to source and returns the walk
// in travel order, excluding source.
func reconstruct(prev map[grid.Coord]grid.Coord, source, target grid.Coord) grid.Trace {
	var rev grid.Trace
	for cur := target; cur != source; {
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	// rev is target..source; reverse in place to get source-adjacent..target.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// coordItem is one entry in the search frontier.
type coordItem struct {
	coord grid.Coord
	dist  grid.Cost
}

// coordPQ is a min-heap of *coordItem ordered by dist ascending, using the
// same lazy-decrease-key strategy as a textbook Dijkstra priority queue:
// stale entries are pushed rather than updated in place, and ignored on
// pop via the visited set.
type coordPQ []*coordItem

func (pq coordPQ) Len() int            { return len(pq) }
func (pq coordPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq coordPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *coordPQ) Push(x interface{}) { *pq = append(*pq, x.(*coordItem)) }
func (pq *coordPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
