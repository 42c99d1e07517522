package pathcache

import (
	"errors"

	"github.com/tilehpa/pathcache/grid"
)

// Sentinel errors for the pathcache package.
var (
	// ErrInvalidConfig indicates an invalid PathCacheConfig: a chunk size
	// below the minimum, or a heuristic incompatible with the topology's
	// neighborhood.
	ErrInvalidConfig = errors.New("pathcache: invalid config")

	// ErrInvalidGrid indicates the grid.Grid reported inconsistent
	// dimensions at construction (width or height <= 0).
	ErrInvalidGrid = errors.New("pathcache: invalid grid")

	// ErrOutOfBounds indicates a coordinate outside the grid's bounds.
	ErrOutOfBounds = errors.New("pathcache: coordinate out of bounds")
)

// Config configures PathCache construction and query behavior. All fields
// are optional; use DefaultConfig for sensible defaults and set fields
// directly to override them.
type Config struct {
	// ChunkSize is the side length S of a chunk, in tiles. Must be >= 2.
	ChunkSize int

	// CachePaths stores a per-edge predecessor trace so path segments can
	// be expanded without recomputation, at the cost of memory.
	CachePaths bool

	// AStarFallback runs classical A* directly on the concrete grid for
	// queries whose endpoints are close together, skipping the abstract
	// graph entirely.
	AStarFallback bool

	// PerfectPaths disables every abstraction shortcut so queries are
	// exact, at the cost of speed. When true, the query engine answers
	// every query with the concrete A* search over the whole grid and never
	// consults the abstract graph, so AStarFallback has no further effect.
	PerfectPaths bool

	// Heuristic picks the admissible distance estimate used by the query
	// engine's A* search. Should match Topology.Neighborhood: Manhattan
	// for Four, Octile or Chebyshev for Eight.
	Heuristic grid.Heuristic

	// Parallel enables a bounded worker pool for chunk processing during
	// Build and TilesChanged.
	Parallel bool

	// EntranceSplit is the minimum contiguous passable-pair run length
	// that produces two abstract nodes instead of one at the midpoint.
	// Must be >= 1.
	EntranceSplit int
}

// DefaultConfig returns the spec defaults: ChunkSize=8, CachePaths=true,
// AStarFallback=true, PerfectPaths=false, Heuristic=Manhattan,
// Parallel=false, EntranceSplit=6.
func DefaultConfig() Config {
	return Config{
		ChunkSize:     8,
		CachePaths:    true,
		AStarFallback: true,
		PerfectPaths:  false,
		Heuristic:     grid.Manhattan,
		Parallel:      false,
		EntranceSplit: 6,
	}
}

// validate checks cfg against topo and returns ErrInvalidConfig if the
// chunk size is too small or the heuristic can't be admissible for the
// neighborhood.
func (cfg Config) validate(topo grid.Topology) error {
	if cfg.ChunkSize < 2 {
		return ErrInvalidConfig
	}
	if cfg.EntranceSplit < 1 {
		return ErrInvalidConfig
	}
	if topo.Neighborhood == grid.Four && cfg.Heuristic != grid.Manhattan {
		return ErrInvalidConfig
	}
	if topo.Neighborhood == grid.Eight && cfg.Heuristic == grid.Manhattan {
		return ErrInvalidConfig
	}
	return nil
}
