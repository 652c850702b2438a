package esu_test

import (
	"fmt"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/esu"
)

// ExampleEnumerate walks the five connected triples of a 5-cycle.
func ExampleEnumerate() {
	g, _ := core.New(5)
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 5}} {
		g.InsertEdge(e[0], e[1])
		g.InsertEdge(e[1], e[0]) // undirected: mirror explicitly
	}

	res, _ := esu.Enumerate(g, 3)
	for _, sub := range res.Subgraphs {
		fmt.Println(sub)
	}
	// Output:
	// [1 2 5]
	// [1 2 3]
	// [1 5 4]
	// [2 3 4]
	// [3 4 5]
}

// ExampleWithOnSubgraph streams emissions instead of waiting for the
// collected Result.
func ExampleWithOnSubgraph() {
	g, _ := core.New(3)
	for _, e := range [][2]int{{1, 2}, {2, 3}} {
		g.InsertEdge(e[0], e[1])
		g.InsertEdge(e[1], e[0])
	}

	count := 0
	_, _ = esu.Enumerate(g, 2, esu.WithOnSubgraph(func(vertices []int) {
		count++
		fmt.Println(count, vertices)
	}))
	// Output:
	// 1 [1 2]
	// 2 [2 3]
}
