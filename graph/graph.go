// Package graph: method implementations for the Graph container.
package graph

import "sort"

// AddVertex ensures id has an adjacency entry, creating an empty one if
// needed. Adding an existing vertex is a no-op (its edges are kept).
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// AddEdge inserts (or overwrites) the directed edge from→to with the given
// weight, creating adjacency entries for both endpoints so the graph stays
// well-formed. Duplicate insertion overwrites the previous weight; self-loops
// are permitted (they can never shorten a path).
//
// Returns ErrEmptyVertexID if either endpoint is empty, or ErrNegativeWeight
// if weight < 0 — negative weights are rejected eagerly rather than left to
// produce silently wrong shortest-path answers.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)
	g.adj[from][to] = weight

	return nil
}

// HasVertex reports whether id has an adjacency entry.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Neighbors returns a copy of id's outgoing adjacency map (neighbor → weight).
// A vertex with no outgoing edges yields an empty, non-nil map. Returns
// ErrVertexNotFound if id has no adjacency entry at all — for FromAdjacency
// graphs this distinguishes a legitimate dead end (empty entry) from a
// malformed input (missing entry).
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make(map[string]int64, len(neighbors))
	for to, w := range neighbors {
		out[to] = w
	}

	return out, nil
}

// Weight returns the weight of the edge from→to and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, ok := g.adj[from]
	if !ok {
		return 0, false
	}
	w, ok := neighbors[to]

	return w, ok
}

// Vertices returns all vertex IDs in ascending order. Sorting makes the
// result independent of map iteration order, which keeps callers (and tests)
// deterministic.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, neighbors := range g.adj {
		n += len(neighbors)
	}

	return n
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original, so mutating one never affects shortest-path queries on the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return FromAdjacency(g.adj)
}

// Adjacency returns a deep copy of the full adjacency structure.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]int64, len(g.adj))
	for from, neighbors := range g.adj {
		inner := make(map[string]int64, len(neighbors))
		for to, w := range neighbors {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}

// ensureVertexLocked creates an empty adjacency entry for id if absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}
