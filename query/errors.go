package query

import "errors"

// ErrOutOfBounds indicates a start or goal coordinate outside the grid the
// cache was built from.
var ErrOutOfBounds = errors.New("query: coordinate out of bounds")
