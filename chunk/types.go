package chunk

import (
	"errors"

	"github.com/tilehpa/pathcache/grid"
)

// Sentinel errors for the chunk package.
var (
	// ErrInvalidSize indicates a chunk side length smaller than the minimum of 2.
	ErrInvalidSize = errors.New("chunk: size must be >= 2")
)

// Chunk identifies one square region of the grid by its column and row
// index in the chunk grid (row-major, zero-based).
type Chunk struct {
	Col, Row int
}

// Layout describes how a grid.Width() x grid.Height() grid is partitioned
// into chunks of side Size. Border chunks may be partial.
type Layout struct {
	Width, Height, Size int
}

// NewLayout validates size and returns a Layout for a gridW x gridH grid.
// Returns ErrInvalidSize if size < 2.
func NewLayout(gridW, gridH, size int) (Layout, error) {
	if size < 2 {
		return Layout{}, ErrInvalidSize
	}
	return Layout{Width: gridW, Height: gridH, Size: size}, nil
}

// Cols returns the number of chunk columns, counting a partial trailing
// column.
func (l Layout) Cols() int {
	return (l.Width + l.Size - 1) / l.Size
}

// Rows returns the number of chunk rows, counting a partial trailing row.
func (l Layout) Rows() int {
	return (l.Height + l.Size - 1) / l.Size
}

// ChunkAt returns the chunk owning tile c. Behavior is undefined if c is
// out of bounds.
func (l Layout) ChunkAt(c grid.Coord) Chunk {
	return Chunk{Col: c.X / l.Size, Row: c.Y / l.Size}
}

// Bounds returns the inclusive tile-coordinate bounding box of ch, clipped
// to the grid's actual dimensions for partial border chunks.
func (l Layout) Bounds(ch Chunk) (minX, minY, maxX, maxY int) {
	minX = ch.Col * l.Size
	minY = ch.Row * l.Size
	maxX = minX + l.Size - 1
	maxY = minY + l.Size - 1
	if maxX > l.Width-1 {
		maxX = l.Width - 1
	}
	if maxY > l.Height-1 {
		maxY = l.Height - 1
	}
	return minX, minY, maxX, maxY
}

// Contains reports whether ch is a valid chunk index in this layout.
func (l Layout) Contains(ch Chunk) bool {
	return ch.Col >= 0 && ch.Col < l.Cols() && ch.Row >= 0 && ch.Row < l.Rows()
}

// Chunks enumerates every chunk in row-major order.
func (l Layout) Chunks() []Chunk {
	cols, rows := l.Cols(), l.Rows()
	out := make([]Chunk, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Chunk{Col: c, Row: r})
		}
	}
	return out
}

// BorderNeighbors returns the chunks directly to the right and below ch
// that share a border with it, in that order. Scanning only these two
// directions per chunk (instead of all four) visits each border exactly
// once across a full sweep of Chunks().
func (l Layout) BorderNeighbors(ch Chunk) []Chunk {
	out := make([]Chunk, 0, 2)
	right := Chunk{Col: ch.Col + 1, Row: ch.Row}
	down := Chunk{Col: ch.Col, Row: ch.Row + 1}
	if l.Contains(right) {
		out = append(out, right)
	}
	if l.Contains(down) {
		out = append(out, down)
	}
	return out
}

// AllNeighbors returns every chunk sharing a border with ch (up to four).
func (l Layout) AllNeighbors(ch Chunk) []Chunk {
	candidates := [4]Chunk{
		{Col: ch.Col + 1, Row: ch.Row},
		{Col: ch.Col - 1, Row: ch.Row},
		{Col: ch.Col, Row: ch.Row + 1},
		{Col: ch.Col, Row: ch.Row - 1},
	}
	out := make([]Chunk, 0, 4)
	for _, n := range candidates {
		if l.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
