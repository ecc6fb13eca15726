// Package graph: type declarations, sentinel errors and constructors.
// Method implementations live in graph.go.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates a vertex ID that is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that has
	// no adjacency entry. For graphs built via New/AddEdge this means the
	// vertex simply does not exist; for FromAdjacency graphs it may also
	// mean the input map was malformed (a neighbor without its own entry).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates AddEdge was called with a negative weight.
	// Negative weights are rejected at construction time because the
	// shortest-path algorithms in this module are only correct without them.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Graph is a weighted directed graph stored as nested adjacency maps:
// adj[from][to] = weight. A vertex exists iff it has an entry in adj,
// even if that entry is an empty map (a sink with no outgoing edges).
//
// mu guards adj for concurrent use. Methods never hand out references to
// internal maps; Neighbors and Adjacency return copies.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]int64
}

// New creates an empty directed weighted graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}

// FromAdjacency builds a Graph from a raw adjacency map, deep-copying every
// entry so the caller retains ownership of raw. The input is taken verbatim:
// missing neighbor entries and negative weights are preserved, not repaired,
// so that downstream algorithms can surface them as the input-contract
// violations they are.
// Complexity: O(V + E).
func FromAdjacency(raw map[string]map[string]int64) *Graph {
	g := &Graph{adj: make(map[string]map[string]int64, len(raw))}
	for from, neighbors := range raw {
		inner := make(map[string]int64, len(neighbors))
		for to, w := range neighbors {
			inner[to] = w
		}
		g.adj[from] = inner
	}

	return g
}
