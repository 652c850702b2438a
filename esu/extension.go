package esu

import (
	"slices"

	"github.com/katalvlaran/motif/core"
)

// extensionSet is the transient candidate pool of one recursion branch:
// a FIFO queue of vertices eligible to extend the current subgraph,
// plus a membership index over every vertex this branch has already
// committed to the subgraph or queued as a candidate.
//
// The index is what enforces the exclusive-neighborhood rule: a vertex
// adjacent to the growing subgraph enters the queue at most once per
// branch, so no subgraph can be assembled along two different orders.
// Sibling branches never share an extensionSet — grow always returns a
// fresh copy, leaving the parent's pool intact for its next candidate.
type extensionSet struct {
	queue []int  // pending candidates, consumed front-first
	taken []bool // vertex index → already in subgraph or ever queued
}

// newExtensionSet returns an empty pool for a graph of the given size,
// seeded with the anchor so the anchor never re-enters its own subgraph.
func newExtensionSet(size, anchor int) *extensionSet {
	s := &extensionSet{taken: make([]bool, size)}
	s.taken[anchor] = true

	return s
}

// empty reports whether the branch has run out of candidates.
func (s *extensionSet) empty() bool { return len(s.queue) == 0 }

// take removes and returns the front candidate. The removal is
// permanent for this branch: the vertex is never reconsidered at this
// recursion level, which is what prevents duplicate enumeration among
// siblings. Callers must check empty() first.
func (s *extensionSet) take() int {
	w := s.queue[0]
	s.queue = s.queue[1:]

	return w
}

// grow returns a fresh pool extending s with every eligible neighbor of
// w: index strictly greater than the anchor, and not yet known to this
// branch (not in the subgraph, never queued before). s itself is left
// untouched, so the caller keeps an unmodified pool for its remaining
// candidates.
// Complexity: O(size + deg(w))
func (s *extensionSet) grow(g *core.Graph, anchor, w int) *extensionSet {
	next := &extensionSet{
		queue: slices.Clone(s.queue),
		taken: slices.Clone(s.taken),
	}
	for u := range g.Neighbors(w) {
		if u <= anchor || next.taken[u] {
			continue
		}
		next.taken[u] = true
		next.queue = append(next.queue, u) // new entries after inherited ones
	}

	return next
}
