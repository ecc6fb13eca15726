// Package dijkstra implements point-to-point shortest path search on
// weighted directed graphs with non-negative edge weights.
//
// ShortestPath computes the minimum total edge weight from a start vertex to
// a finish vertex over a graph.Graph, processing vertices in order of
// increasing distance with a min-heap priority queue and relaxing outgoing
// edges as each vertex is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the heap at most once: V extractions.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the cost and parent maps.
//   - O(E) worst-case heap entries under the “lazy decrease-key” strategy.
//
// Notes on implementation choices:
//
//   - The heap orders by (cost, vertex ID), so tie-breaks are deterministic
//     rather than dependent on map iteration order.
//   - The search stops as soon as the finish vertex is finalized; vertices
//     farther from start than finish are never expanded.
//   - An upfront O(E) scan detects negative weights and fails fast with
//     ErrNegativeWeight instead of returning a silently wrong answer.
//   - A selected vertex with no adjacency entry in the graph — the finish
//     included — is an input-contract violation (a dead end must carry an
//     empty entry, not a missing one) and aborts the query with
//     ErrMalformedGraph.
//
// Failure taxonomy (sentinel errors, all distinct and errors.Is-matchable):
//
//   - ErrEmptyStart / ErrEmptyFinish: an endpoint ID is the empty string.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrStartNotFound:   start has no adjacency entry in the graph.
//   - ErrNegativeWeight:  some edge carries a negative weight.
//   - ErrMalformedGraph:  a reachable vertex lacks an adjacency entry.
//   - ErrUnreachable:     no path from start to finish exists. This is the
//     normal “no route” outcome, not a defect; it also covers a finish
//     vertex absent from the graph.
//
// Example usage:
//
//	g := graph.New()
//	g.AddEdge("start", "a", 6)
//	g.AddEdge("start", "b", 2)
//	g.AddEdge("b", "a", 3)
//	g.AddEdge("b", "finish", 5)
//	g.AddEdge("a", "finish", 1)
//
//	res, err := dijkstra.ShortestPath(g, "start", "finish", dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost=%d route=%v\n", res.Cost, res.Path)
//	// cost=6 route=[start b a finish]
package dijkstra
