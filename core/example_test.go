package core_test

import (
	"fmt"

	"github.com/katalvlaran/motif/core"
)

// ExampleGraph_InsertEdge builds a small directed square and lists the
// neighbors of its first vertex.
func ExampleGraph_InsertEdge() {
	g, _ := core.New(4)

	// one-based endpoints, exactly as in the text input format
	g.InsertEdge(1, 2)
	g.InsertEdge(1, 4)
	g.InsertEdge(1, 2) // duplicate: ignored
	g.InsertEdge(1, 1) // self-loop: ignored

	for u := range g.Neighbors(0) {
		fmt.Println(u + 1)
	}
	// Output:
	// 2
	// 4
}
