package esu_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/esu"
)

// benchComplete builds the complete graph on n vertices.
func benchComplete(n int) *core.Graph {
	g, _ := core.New(n)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			g.InsertEdge(i, j)
		}
	}

	return g
}

// benchCycle builds the undirected n-cycle.
func benchCycle(n int) *core.Graph {
	g, _ := core.New(n)
	for i := 1; i <= n; i++ {
		j := i%n + 1
		g.InsertEdge(i, j)
		g.InsertEdge(j, i)
	}

	return g
}

func BenchmarkEnumerate_Complete(b *testing.B) {
	for _, bc := range []struct{ n, k int }{
		{10, 3},
		{15, 3},
		{15, 4},
	} {
		g := benchComplete(bc.n)
		b.Run(fmt.Sprintf("n=%d/k=%d", bc.n, bc.k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := esu.Enumerate(g, bc.k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEnumerate_Cycle(b *testing.B) {
	g := benchCycle(core.MaxVertices)
	b.Run("n=100/k=5", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := esu.Enumerate(g, 5); err != nil {
				b.Fatal(err)
			}
		}
	})
}
