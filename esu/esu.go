// Package esu implements extension-set backtracking enumeration of
// connected induced subgraphs on core.Graph. See doc.go for the contract.
package esu

import (
	"fmt"

	"github.com/katalvlaran/motif/core"
)

// walker carries the immutable parameters of one enumeration run.
type walker struct {
	graph *core.Graph // read-only adjacency
	k     int         // target subgraph size
	opts  Options     // observer hook
	res   *Result     // emission collector
}

// Enumerate emits every connected induced subgraph of exactly k
// vertices in g, each exactly once, anchored at its minimum-index
// vertex. Returns the collected Result or an error for invalid input.
func Enumerate(g *core.Graph, k int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Validate the requested size
	if k < 1 || k > g.Size() {
		return nil, fmt.Errorf("esu: k=%d with %d vertices: %w", k, g.Size(), ErrSizeOutOfRange)
	}

	// 3. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	w := &walker{graph: g, k: k, opts: eopts, res: &Result{K: k}}

	// 4. Anchor loop: every vertex once, strictly within [0, size).
	//    The anchor's initial extension grows from an explicitly empty
	//    pool seeded with the anchor itself.
	for root := 0; root < g.Size(); root++ {
		seed := newExtensionSet(g.Size(), root)
		w.extend([]int{root}, seed.grow(g, root, root), root)
	}

	return w.res, nil
}

// extend grows subgraph by one vertex per branch until it reaches k
// vertices, then emits it. ext is owned by this call; subgraph is
// copied before every descent so backtracking in one branch never
// corrupts a sibling's view.
func (w *walker) extend(subgraph []int, ext *extensionSet, root int) {
	// Terminal: a completed subgraph is a leaf of the search tree.
	if len(subgraph) == w.k {
		w.emit(subgraph)

		return
	}

	for !ext.empty() {
		v := ext.take()

		branch := make([]int, len(subgraph)+1)
		copy(branch, subgraph)
		branch[len(subgraph)] = v

		// The child pool grows from the remaining candidates, after v
		// was consumed, plus v's own exclusive neighborhood.
		w.extend(branch, ext.grow(w.graph, root, v), root)
	}
}

// emit records subgraph in one-based form and notifies the observer.
func (w *walker) emit(subgraph []int) {
	out := make([]int, len(subgraph))
	for i, v := range subgraph {
		out[i] = v + 1
	}
	w.res.Subgraphs = append(w.res.Subgraphs, out)

	if w.opts.OnSubgraph != nil {
		w.opts.OnSubgraph(out)
	}
}
