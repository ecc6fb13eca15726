// Package graph defines the weighted directed graph container used by the
// shortest-path algorithms in this module.
//
// A Graph is an adjacency map: vertex ID → (neighbor ID → edge weight).
// Vertex IDs are opaque non-empty strings; weights are signed 64-bit
// integers, constrained to be non-negative by AddEdge. All mutating and
// querying methods are safe for concurrent use via an internal sync.RWMutex,
// and no query ever mutates the graph, so repeated shortest-path runs over
// an unchanged Graph are guaranteed to observe identical state.
//
// Two constructors exist:
//
//   - New() builds an empty graph; AddEdge keeps it well-formed by creating
//     an (empty) adjacency entry for every endpoint it touches.
//   - FromAdjacency(raw) ingests a caller-supplied adjacency map verbatim
//     (deep-copied, never normalized). A raw map may be malformed: it may
//     reference a neighbor that has no adjacency entry of its own, or carry
//     a negative weight. Such defects are deliberately preserved so that
//     consumers (dijkstra) can detect and report them.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex has no adjacency entry.
//	ErrNegativeWeight - AddEdge called with a negative weight.
package graph
