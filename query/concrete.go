package query

import (
	"container/heap"

	"github.com/tilehpa/pathcache/grid"
)

// concreteItem is one entry in the concrete-grid search frontier.
type concreteItem struct {
	coord    grid.Coord
	priority grid.Cost
}

type concretePQ []*concreteItem

func (pq concretePQ) Len() int            { return len(pq) }
func (pq concretePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq concretePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *concretePQ) Push(x interface{}) { *pq = append(*pq, x.(*concreteItem)) }
func (pq *concretePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// concreteAStar runs classical A* directly on g from start to goal,
// skipping the abstract graph entirely. Used for short queries where the
// abstraction overhead isn't worth paying.
//
// Complexity: O(d log d) where d is the number of tiles explored before
// goal is settled, typically proportional to the straight-line distance
// for the short hops this is used for.
func concreteAStar(g grid.Grid, topo grid.Topology, h grid.Heuristic, start, goal grid.Coord) (grid.Cost, grid.Trace, bool) {
	if start == goal {
		return 0, grid.Trace{}, true
	}

	dist := map[grid.Coord]grid.Cost{start: 0}
	prev := map[grid.Coord]grid.Coord{}
	visited := map[grid.Coord]bool{}

	pq := &concretePQ{{coord: start, priority: grid.Estimate(h, start, goal, topo.DiagonalCost)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*concreteItem)
		if visited[cur.coord] {
			continue
		}
		if cur.coord == goal {
			return dist[goal], reconstructTrace(prev, start, goal), true
		}
		visited[cur.coord] = true

		for _, step := range grid.Neighbors(g, topo, cur.coord) {
			if visited[step.To] {
				continue
			}
			nd := dist[cur.coord] + step.Cost
			if old, ok := dist[step.To]; ok && old <= nd {
				continue
			}
			dist[step.To] = nd
			prev[step.To] = cur.coord
			priority := nd + grid.Estimate(h, step.To, goal, topo.DiagonalCost)
			heap.Push(pq, &concreteItem{coord: step.To, priority: priority})
		}
	}

	return 0, nil, false
}

// reconstructTrace walks prev back from target to source and returns the
// walk in travel order, excluding source.
func reconstructTrace(prev map[grid.Coord]grid.Coord, source, target grid.Coord) grid.Trace {
	var rev grid.Trace
	for cur := target; cur != source; {
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
