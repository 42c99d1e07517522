package path

import (
	"iter"
	"sync"

	"github.com/tilehpa/pathcache/grid"
)

// Segment describes one leg of a path, handed in by the query package at
// construction time. Trace, if non-nil, is the already-known concrete walk
// from (From, To]. Resolve, used only when Trace is nil, recomputes it on
// first demand; it must be safe to call at most once.
type Segment struct {
	From, To grid.Coord
	Cost     grid.Cost
	Trace    grid.Trace
	Resolve  func() grid.Trace
}

// segment is the shared, reference-counted storage backing one Segment.
// Cloning a Path copies the slice of *segment pointers, not the segments
// themselves, so clones and their source share resolution work.
type segment struct {
	once    sync.Once
	trace   grid.Trace
	resolve func() grid.Trace
}

func (s *segment) resolveTrace() grid.Trace {
	s.once.Do(func() {
		if s.resolve != nil {
			s.trace = s.resolve()
		}
	})
	return s.trace
}

// Path is an ordered sequence of concrete segments between Start and
// Goal. The zero value is not usable; construct with New.
type Path struct {
	start, goal grid.Coord
	segs        []*segment
	cost        grid.Cost

	lenOnce sync.Once
	length  int
}

// New builds a Path from start, goal, and its ordered segments. segs must
// chain: segs[i].To == segs[i+1].From, with segs[0].From == start and the
// last segment's To == goal.
func New(start, goal grid.Coord, segs []Segment) *Path {
	out := make([]*segment, len(segs))
	var total grid.Cost
	for i, s := range segs {
		out[i] = &segment{trace: s.Trace, resolve: s.Resolve}
		total += s.Cost
	}
	return &Path{start: start, goal: goal, segs: out, cost: total}
}

// Start returns the path's origin tile.
func (p *Path) Start() grid.Coord { return p.start }

// Goal returns the path's destination tile.
func (p *Path) Goal() grid.Coord { return p.goal }

// Cost returns the path's total cost, known without expanding any segment.
func (p *Path) Cost() grid.Cost { return p.cost }

// Len returns the total number of tiles the path visits, including Start.
// The first call expands every segment that isn't already resolved; the
// result is cached for subsequent calls.
func (p *Path) Len() int {
	p.lenOnce.Do(func() {
		n := 1
		for _, s := range p.segs {
			n += len(s.resolveTrace())
		}
		p.length = n
	})
	return p.length
}

// Tiles returns an iterator over every tile the path visits, in travel
// order, starting with Start. Segments are expanded lazily as the
// iteration reaches them.
func (p *Path) Tiles() iter.Seq[grid.Coord] {
	return func(yield func(grid.Coord) bool) {
		if !yield(p.start) {
			return
		}
		for _, s := range p.segs {
			for _, t := range s.resolveTrace() {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Clone returns a Path sharing this one's segment data. Cheap: it copies a
// slice of pointers, not the underlying traces.
func (p *Path) Clone() *Path {
	segs := make([]*segment, len(p.segs))
	copy(segs, p.segs)
	return &Path{start: p.start, goal: p.goal, segs: segs, cost: p.cost}
}
