// Package dijkstra_test provides runnable examples for the engine.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// ExampleEngine_Run traces a four-node graph and prints the finalization order.
func ExampleEngine_Run() {
	// 1) Nodes and a row-major matrix: A→B 1, A→C 4, B→C 2, C→D 1.
	nodes := []string{"A", "B", "C", "D"}
	weights := []float64{
		0, 1, 4, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}

	// 2) Build the engine rooted at A.
	e, err := dijkstra.New(nodes, weights, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Run and print each finalized node with its distance.
	for _, rec := range e.Run() {
		fmt.Printf("%s=%g\n", nodes[rec.Node], rec.Table[rec.Node].Distance)
	}
	// Output:
	// A=0
	// B=1
	// C=3
	// D=4
}

// ExampleEngine_ConstructPath reconstructs the route A→D on the same graph.
func ExampleEngine_ConstructPath() {
	nodes := []string{"A", "B", "C", "D"}
	weights := []float64{
		0, 1, 4, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}
	e, err := dijkstra.New(nodes, weights, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e.Run()

	path, ok, err := e.ConstructPath("D")
	if err != nil || !ok {
		fmt.Println("no path", err)
		return
	}
	fmt.Println(path.Names(nodes), path.Weights, path.Total())
	// Output: [A B C D] [0 1 2 1] 4
}
