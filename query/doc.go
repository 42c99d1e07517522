// Package query answers path requests against a pathcache.PathCache: a
// direct concrete A* for short hops, and an abstract A*/Dijkstra search
// over the cache's node graph for everything else, with the query's own
// start and goal tiles spliced in through a scoped overlay that never
// touches the persistent cache.
package query
