// Package dijkstra_test provides runnable examples for ShortestPath.
// Each example is executable via “go test -run Example”, showing both code
// and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/lavrin/pathfind/dijkstra"
	"github.com/lavrin/pathfind/graph"
)

// ExampleShortestPath demonstrates the cheapest-route query on the canonical
// book graph. The direct start→a→finish route costs 7; going through b first
// costs only 6.
func ExampleShortestPath() {
	// 1) Build the weighted digraph. AddEdge creates vertices on demand.
	g := graph.New()
	g.AddEdge("start", "a", 6)
	g.AddEdge("start", "b", 2)
	g.AddEdge("b", "a", 3)
	g.AddEdge("b", "finish", 5)
	g.AddEdge("a", "finish", 1)

	// 2) Query the minimal cost from "start" to "finish".
	res, err := dijkstra.ShortestPath(g, "start", "finish")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%d\n", res.Cost)
	// Output: cost=6
}

// ExampleShortestPath_route demonstrates route reconstruction with
// WithReturnPath: the Result carries the vertices of one minimal route,
// start first and finish last.
func ExampleShortestPath_route() {
	g := graph.New()
	g.AddEdge("start", "a", 6)
	g.AddEdge("start", "b", 2)
	g.AddEdge("b", "a", 3)
	g.AddEdge("b", "finish", 5)
	g.AddEdge("a", "finish", 1)

	res, err := dijkstra.ShortestPath(g, "start", "finish", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%d route=%v\n", res.Cost, res.Path)
	// Output: cost=6 route=[start b a finish]
}

// ExampleShortestPath_unreachable demonstrates the normal “no route exists”
// outcome: a distinct sentinel error, matchable with errors.Is.
func ExampleShortestPath_unreachable() {
	g := graph.New()
	g.AddEdge("start", "a", 1)
	g.AddVertex("island") // present, but no edge leads here

	_, err := dijkstra.ShortestPath(g, "start", "island")
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	// Output: true
}

// ExampleShortestPath_maxCost demonstrates capping exploration: routes more
// expensive than MaxCost are treated as nonexistent.
func ExampleShortestPath_maxCost() {
	g := graph.New()
	g.AddEdge("start", "a", 4)
	g.AddEdge("a", "finish", 4)

	_, err := dijkstra.ShortestPath(g, "start", "finish", dijkstra.WithMaxCost(5))
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	// Output: true
}
