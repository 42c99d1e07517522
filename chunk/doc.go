// Package chunk partitions a grid.Grid into fixed-size square regions and
// discovers entrances between neighboring regions: maximal contiguous runs
// of passable tile-pairs straddling a shared border.
//
// Chunks tile the grid in row-major order; chunks along the right and
// bottom edges may be partial when the grid's dimensions aren't a multiple
// of the chunk size. Entrance extraction is deterministic: re-scanning the
// same border always yields identical node positions in identical order.
package chunk
