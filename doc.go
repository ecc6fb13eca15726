// Package pathfind is a compact toolkit for single-source shortest paths
// on small weighted directed graphs, plus the two helpers its demo needs:
// micro-benchmark timing and on-screen width measurement for console banners.
//
// 🧭 What is pathfind?
//
//	A focused, thread-safe library built around one algorithm done well:
//		• graph/    — weighted digraph container (adjacency maps, safe under locks)
//		• dijkstra/ — point-to-point shortest path with a min-heap priority queue,
//		              optional path reconstruction, and a closed error taxonomy
//		• bench/    — stopwatch helpers (single run, best-of-N, iteration fitting)
//		• banner/   — terminal cell-width counting and bordered message boxes
//
// ✨ Why pathfind?
//
//   - Deterministic – heap tie-breaks by vertex ID, never by map iteration order
//   - Honest errors – unknown start, malformed graph and unreachable finish are
//     distinct sentinel errors, not one ambiguous "no result"
//   - Pure Go core – the algorithm itself has zero third-party dependencies
//
// Quick ASCII example:
//
//	      6
//	start───a
//	  │    ╱ │
//	2 │  3╱  │ 1
//	  │  ╱   │
//	  b─────finish
//	      5
//
// The cheapest start→finish route above is start→b→a→finish with total cost 6.
//
//	go get github.com/lavrin/pathfind
package pathfind
