// Package dijkstra: result type, sentinel errors and configuration options.
// The algorithm itself lives in dijkstra.go.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptyStart indicates that the start vertex ID is empty.
	ErrEmptyStart = errors.New("dijkstra: start vertex ID is empty")

	// ErrEmptyFinish indicates that the finish vertex ID is empty.
	ErrEmptyFinish = errors.New("dijkstra: finish vertex ID is empty")

	// ErrNilGraph indicates that a nil *graph.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start vertex has no adjacency entry
	// in the graph. Kept distinct from ErrUnreachable: an unknown start is a
	// caller mistake, not a topology fact.
	ErrStartNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's greedy finalize-on-selection step is only correct for
	// non-negative weights, so such graphs are rejected outright.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrMalformedGraph indicates that a vertex reached during relaxation has
	// no adjacency entry. A vertex with zero outgoing edges must still carry
	// an empty entry; a missing one is an input-contract violation.
	ErrMalformedGraph = errors.New("dijkstra: reached vertex missing adjacency entry")

	// ErrUnreachable indicates that no path from start to finish exists.
	ErrUnreachable = errors.New("dijkstra: finish vertex unreachable from start")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// unreached is the internal sentinel for "no cost discovered yet". It exceeds
// every achievable real path cost, so any genuine relaxation improves on it.
const unreached = int64(math.MaxInt64)

// Result carries the outcome of a successful ShortestPath query.
//
// Cost is the minimal total edge weight from start to finish.
// Path is the corresponding route, start first and finish last, materialized
// from the parent pointers the search maintains. It is nil unless
// WithReturnPath() was supplied.
type Result struct {
	Cost int64
	Path []string
}

// Options configures the behavior of ShortestPath.
//
// ReturnPath – if true, Result.Path is populated; otherwise it stays nil.
// MaxCost    – cap on explored path cost; vertices whose best-known cost
//
//	exceeds it are never expanded. Must be ≥ 0.
//	Default is math.MaxInt64 (no cap).
type Options struct {
	ReturnPath bool  // whether to materialize the route in Result.Path
	MaxCost    int64 // maximum total cost to explore
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithReturnPath enables route reconstruction: Result.Path will hold the
// vertices of one minimal start→finish route in order.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a maximum total cost to explore. Vertices whose shortest
// cost from start exceeds max are not expanded, and a finish beyond the cap
// is reported as ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early, at the call site.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: no route reconstruction, no cost cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
	}
}
