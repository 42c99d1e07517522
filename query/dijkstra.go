package query

import (
	"container/heap"

	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

// dijkstraItem is one entry in the multi-target search frontier.
type dijkstraItem struct {
	id   node.ID
	dist grid.Cost
}

// dijkstraPQ is a min-heap ordered by dist ascending, ties broken by the
// lower node ID, mirroring aStarPQ's determinism guarantee.
type dijkstraPQ []*dijkstraItem

func (pq dijkstraPQ) Len() int { return len(pq) }
func (pq dijkstraPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq dijkstraPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *dijkstraPQ) Push(x interface{}) { *pq = append(*pq, x.(*dijkstraItem)) }
func (pq *dijkstraPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// abstractDijkstra runs a multi-target Dijkstra over ov from src, halting
// once every id in targets has been settled or the frontier empties. It
// returns the ordered edges of the shortest path to each target actually
// reached; unreached targets are absent from the result.
func abstractDijkstra(ov *overlay, src node.ID, targets map[node.ID]struct{}) map[node.ID][]node.Edge {
	remaining := make(map[node.ID]struct{}, len(targets))
	for t := range targets {
		if t != src {
			remaining[t] = struct{}{}
		}
	}

	gScore := map[node.ID]grid.Cost{src: 0}
	prevNode := map[node.ID]node.ID{}
	prevEdge := map[node.ID]node.Edge{}
	closed := map[node.ID]bool{}

	pq := &dijkstraPQ{{id: src, dist: 0}}
	heap.Init(pq)

	results := make(map[node.ID][]node.Edge)

	for pq.Len() > 0 && len(remaining) > 0 {
		cur := heap.Pop(pq).(*dijkstraItem)
		if closed[cur.id] {
			continue
		}
		closed[cur.id] = true

		if _, wanted := remaining[cur.id]; wanted {
			results[cur.id] = reconstructEdges(prevNode, prevEdge, src, cur.id)
			delete(remaining, cur.id)
		}

		for _, e := range ov.neighbors(cur.id) {
			if closed[e.To] {
				continue
			}
			cand := gScore[cur.id] + e.Weight
			if old, seen := gScore[e.To]; seen && old <= cand {
				continue
			}
			gScore[e.To] = cand
			prevNode[e.To] = cur.id
			prevEdge[e.To] = e
			heap.Push(pq, &dijkstraItem{id: e.To, dist: cand})
		}
	}

	return results
}
