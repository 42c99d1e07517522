// Package path represents the result of a query as an ordered sequence of
// concrete tile-to-tile segments, expanded lazily and cheap to share.
//
// A Path is built once by the query package and handed to the caller.
// Its cost is known eagerly (the sum of its segment weights), but the
// concrete tile sequence behind each segment is only materialized the
// first time Tiles is iterated, and cached on the segment afterward so
// repeated iteration or cloning doesn't redo the work.
//
// A Path outlives the query that produced it. A segment handed in with a
// Trace is self-contained, but a segment handed in with only a Resolve
// function is expanded by calling it on first demand, and the query
// package builds that function over the cache itself. Such a segment is
// therefore expanded against the cache as it stands when Tiles or Len first
// reaches it, not as it stood at query time, so a Path is invalidated by a
// later TilesChanged call on the cache that produced it.
package path
