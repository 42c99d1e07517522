package chunk

import (
	"errors"

	"github.com/tilehpa/pathcache/grid"
)

// ErrNotAdjacent indicates ScanBorder was called with chunks that do not
// share a border in the given layout.
var ErrNotAdjacent = errors.New("chunk: chunks are not adjacent")

// Thresholds configures entrance extraction.
type Thresholds struct {
	// SplitThreshold is the minimum contiguous passable-pair run length
	// that produces two abstract nodes (one per end) instead of one node
	// at the run's midpoint.
	SplitThreshold int
}

// DefaultThresholds returns the spec default: runs of length >= 6 split
// into two nodes.
func DefaultThresholds() Thresholds {
	return Thresholds{SplitThreshold: 6}
}

// Entrance is one pair of mirrored tiles straddling the border between
// ChunkA and ChunkB: TileA lies in ChunkA, TileB in ChunkB, and the two
// are a single legal step apart. A long passable run produces two
// Entrance values (one per endpoint); a short run produces one, at the
// run's midpoint.
type Entrance struct {
	ChunkA, ChunkB Chunk
	TileA, TileB   grid.Coord
}

// ScanBorder scans the shared border between adjacent chunks a and b and
// returns the entrances found, in deterministic scan order. Returns
// ErrNotAdjacent if a and b do not share a border in layout.
//
// A border position is passable when both of its mirrored tiles are
// traversable. Diagonal corner-cutting policy governs interior diagonal
// moves (see grid.Neighbors) and is not consulted here: a border crossing
// between two mirrored tiles is always a single orthogonal step.
//
// Complexity: O(S) where S is the shared border length.
func ScanBorder(g grid.Grid, layout Layout, a, b Chunk, cfg Thresholds) ([]Entrance, error) {
	minXA, minYA, maxXA, maxYA := layout.Bounds(a)
	minXB, minYB, maxXB, maxYB := layout.Bounds(b)

	var tileAAt, tileBAt func(i int) grid.Coord
	var span int

	switch {
	case b.Col == a.Col+1 && b.Row == a.Row:
		// b lies to the right of a: vertical border at x=maxXA | x=minXB.
		lo, hi := minYA, maxYA
		if minYB > lo {
			lo = minYB
		}
		if maxYB < hi {
			hi = maxYB
		}
		span = hi - lo + 1
		if span < 0 {
			span = 0
		}
		tileAAt = func(i int) grid.Coord { return grid.Coord{X: maxXA, Y: lo + i} }
		tileBAt = func(i int) grid.Coord { return grid.Coord{X: minXB, Y: lo + i} }
	case b.Row == a.Row+1 && b.Col == a.Col:
		// b lies below a: horizontal border at y=maxYA | y=minYB.
		lo, hi := minXA, maxXA
		if minXB > lo {
			lo = minXB
		}
		if maxXB < hi {
			hi = maxXB
		}
		span = hi - lo + 1
		if span < 0 {
			span = 0
		}
		tileAAt = func(i int) grid.Coord { return grid.Coord{X: lo + i, Y: maxYA} }
		tileBAt = func(i int) grid.Coord { return grid.Coord{X: lo + i, Y: minYB} }
	default:
		return nil, ErrNotAdjacent
	}

	passable := make([]bool, span)
	for i := 0; i < span; i++ {
		passable[i] = grid.Passable(g, tileAAt(i)) && grid.Passable(g, tileBAt(i))
	}

	var entrances []Entrance
	i := 0
	for i < span {
		if !passable[i] {
			i++
			continue
		}
		start := i
		for i < span && passable[i] {
			i++
		}
		end := i - 1 // inclusive
		length := end - start + 1

		emit := func(idx int) {
			entrances = append(entrances, Entrance{
				ChunkA: a, ChunkB: b,
				TileA: tileAAt(idx), TileB: tileBAt(idx),
			})
		}

		if length < cfg.SplitThreshold {
			emit(start + (length-1)/2)
		} else {
			emit(start)
			emit(end)
		}
	}

	return entrances, nil
}
