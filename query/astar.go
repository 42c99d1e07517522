package query

import (
	"container/heap"

	"github.com/tilehpa/pathcache/grid"
	"github.com/tilehpa/pathcache/node"
)

// aStarItem is one entry in the abstract-graph search frontier.
type aStarItem struct {
	id       node.ID
	priority grid.Cost
}

// aStarPQ is a min-heap ordered by priority (g-score + heuristic), with
// ties broken by the lower node ID to keep search order, and therefore
// output, deterministic across runs.
type aStarPQ []*aStarItem

func (pq aStarPQ) Len() int { return len(pq) }
func (pq aStarPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].id < pq[j].id
}
func (pq aStarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *aStarPQ) Push(x interface{}) { *pq = append(*pq, x.(*aStarItem)) }
func (pq *aStarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// abstractAStar runs A* over ov from src to dst, using h to estimate the
// remaining distance by tile. It returns the ordered edges of the
// shortest path found, or ok=false if dst is unreachable.
func abstractAStar(ov *overlay, src, dst node.ID, h grid.Heuristic, diagonalCost grid.Cost) (edges []node.Edge, ok bool) {
	goalTile, _ := ov.tile(dst)
	srcTile, _ := ov.tile(src)

	gScore := map[node.ID]grid.Cost{src: 0}
	prevNode := map[node.ID]node.ID{}
	prevEdge := map[node.ID]node.Edge{}
	closed := map[node.ID]bool{}

	pq := &aStarPQ{{id: src, priority: grid.Estimate(h, srcTile, goalTile, diagonalCost)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*aStarItem)
		if closed[cur.id] {
			continue
		}
		if cur.id == dst {
			return reconstructEdges(prevNode, prevEdge, src, dst), true
		}
		closed[cur.id] = true

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

			tile, _ := ov.tile(e.To)
			priority := cand + grid.Estimate(h, tile, goalTile, diagonalCost)
			heap.Push(pq, &aStarItem{id: e.To, priority: priority})
		}
	}

	return nil, false
}

// reconstructEdges walks prevNode/prevEdge back from dst to src and
// returns the edges traversed, in travel order.
func reconstructEdges(prevNode map[node.ID]node.ID, prevEdge map[node.ID]node.Edge, src, dst node.ID) []node.Edge {
	if src == dst {
		return nil
	}
	var edges []node.Edge
	for cur := dst; cur != src; {
		e, ok := prevEdge[cur]
		if !ok {
			break
		}
		edges = append(edges, e)
		cur = prevNode[cur]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}
