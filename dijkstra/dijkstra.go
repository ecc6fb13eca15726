package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/lavrin/pathfind/graph"
)

// ShortestPath computes the minimal total edge weight of a route from start
// to finish in the weighted directed graph g. It accepts functional options
// to customize behavior (WithReturnPath, WithMaxCost).
//
// Returns:
//
//   - *Result holding the cost (and, with WithReturnPath, the route itself).
//   - An error from the package's sentinel taxonomy otherwise; in particular
//     ErrUnreachable when no route exists, which callers should treat as a
//     normal outcome rather than a failure.
//
// Preconditions and validation (in order):
//  1. start must be non-empty (ErrEmptyStart).
//  2. finish must be non-empty (ErrEmptyFinish).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain start (ErrStartNotFound).
//  5. No edge in g can have a negative weight (ErrNegativeWeight).
//
// The query operates on a snapshot of g's adjacency structure taken up
// front, so a run is internally consistent even if g is mutated concurrently,
// and the input graph is never modified.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *graph.Graph, start, finish string, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus caller overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints.
	if start == "" {
		return nil, ErrEmptyStart
	}
	if finish == "" {
		return nil, ErrEmptyFinish
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Snapshot the adjacency structure. Everything below reads only the
	//    snapshot: one consistent view per query, zero mutation of g.
	adj := g.Adjacency()

	// 5) Validate start exists. An unknown start is a caller mistake and gets
	//    its own error instead of collapsing into "no path found".
	if _, ok := adj[start]; !ok {
		return nil, ErrStartNotFound
	}

	// 6) Pre-scan all edges to detect negative weights. Fail fast: a negative
	//    weight would not crash the loop below, it would silently produce a
	//    possibly wrong answer, which is worse.
	for from, neighbors := range adj {
		for to, w := range neighbors {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, from, to, w)
			}
		}
	}

	// 7) Run the search.
	r := &runner{
		adj:     adj,
		options: cfg,
		finish:  finish,
		dist:    make(map[string]int64, len(adj)),
		visited: make(map[string]bool, len(adj)),
		pq:      make(nodePQ, 0, len(adj)),
	}
	if cfg.ReturnPath {
		r.parent = make(map[string]string, len(adj))
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 8) The finish vertex was never finalized: genuinely unreachable (or
	//    absent from the graph entirely, which looks the same from start).
	if !r.visited[finish] {
		return nil, ErrUnreachable
	}

	res := &Result{Cost: r.dist[finish]}
	if cfg.ReturnPath {
		res.Path = r.route(start)
	}

	return res, nil
}

// runner holds the mutable state for a single ShortestPath execution.
// All maps and the heap are created fresh per query and discarded on return.
type runner struct {
	adj     map[string]map[string]int64 // adjacency snapshot; read-only here
	options Options                     // query configuration
	finish  string                      // target vertex; search stops once finalized
	dist    map[string]int64            // vertex ID → best known cost from start
	parent  map[string]string           // vertex ID → predecessor on best route (nil unless ReturnPath)
	visited map[string]bool             // vertex ID → cost finalized
	pq      nodePQ                      // min-heap for lazy decrease-key
}

// init seeds the search: cost 0 for start, one heap entry.
// Vertices absent from dist implicitly carry the unreached sentinel.
func (r *runner) init(start string) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, cost: 0})
}

// process is the core loop: repeatedly extract the unvisited vertex with the
// lowest known cost and relax its outgoing edges.
//
// Loop termination conditions:
//
//   - The finish vertex is finalized (point-to-point early exit).
//   - The heap becomes empty (finish unreachable).
//   - The minimum cost in the heap exceeds MaxCost (everything beyond the
//     cap is treated as unreachable).
//
// Returns ErrMalformedGraph if a finalized vertex has no adjacency entry.
func (r *runner) process() error {
	var u string
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.cost

		// Stale heap entry for an already finalized vertex: skip.
		if r.visited[u] {
			continue
		}

		// Costs come off the heap in nondecreasing order, so once one
		// exceeds MaxCost nothing reachable remains under the cap.
		if d > r.options.MaxCost {
			break
		}

		// u's cost d is now final.
		r.visited[u] = true

		// Point-to-point: the finish's cost is final. Its adjacency entry
		// must still exist — a selected vertex without one is broken input
		// even when the search has no further use for its neighbors.
		if u == r.finish {
			if _, ok := r.adj[u]; !ok {
				return fmt.Errorf("%w: vertex %q", ErrMalformedGraph, u)
			}

			return nil
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbor costs where
// a cheaper route through u exists, recording u as the parent on improvement.
//
// Assumes dist[u] == d is finalized before the call.
func (r *runner) relax(u string, d int64) error {
	neighbors, ok := r.adj[u]
	if !ok {
		// A vertex with zero outgoing edges must still have an (empty)
		// adjacency entry. A missing entry is a broken input, not a dead end.
		return fmt.Errorf("%w: vertex %q", ErrMalformedGraph, u)
	}

	var candidate int64
	for v, w := range neighbors {
		candidate = d + w

		// Never record costs beyond the exploration cap.
		if candidate > r.options.MaxCost {
			continue
		}

		// Strict improvement only; equal-cost rediscoveries push nothing.
		old, seen := r.dist[v]
		if !seen {
			old = unreached
		}
		if candidate >= old {
			continue
		}

		r.dist[v] = candidate
		if r.parent != nil {
			r.parent[v] = u
		}

		// Lazy decrease-key: push a fresh entry, stale ones are skipped on pop.
		heap.Push(&r.pq, &nodeItem{id: v, cost: candidate})
	}

	return nil
}

// route materializes the start→finish route by walking parent pointers back
// from finish. Called only after finish was finalized with ReturnPath set.
func (r *runner) route(start string) []string {
	// Walk backwards, then reverse in place.
	path := []string{r.finish}
	for at := r.finish; at != start; {
		at = r.parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex and a cost at which it was discovered.
type nodeItem struct {
	id   string // vertex ID
	cost int64  // cost from start when this entry was pushed
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, id). The secondary ID
// ordering makes tie-breaks deterministic instead of map-iteration-dependent.
// Duplicated entries from lazy decrease-key are filtered on pop via visited.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending cost, then ascending vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
