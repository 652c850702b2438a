package core

import (
	"iter"
	"slices"
)

// Size returns the number of vertices the graph was constructed with.
func (g *Graph) Size() int { return len(g.vertices) }

// SetLabel attaches label to the vertex at zero-based index v.
// Returns ErrVertexOutOfRange when v is outside [0, size).
func (g *Graph) SetLabel(v int, label string) error {
	if v < 0 || v >= len(g.vertices) {
		return ErrVertexOutOfRange
	}
	g.vertices[v].label = label

	return nil
}

// Label returns the label of the vertex at zero-based index v.
// Returns ErrVertexOutOfRange when v is outside [0, size).
func (g *Graph) Label(v int) (string, error) {
	if v < 0 || v >= len(g.vertices) {
		return "", ErrVertexOutOfRange
	}

	return g.vertices[v].label, nil
}

// InsertEdge appends destination to source's edge set.
//
// Both arguments are one-based, as in the text input format, and are
// converted to zero-based indices internally. The call is a silent no-op
// when source equals destination (self-loop) or either index falls
// outside the graph after conversion. Inserting an edge already present
// leaves the edge set unchanged (idempotent insert, no error signaled).
//
// Only source's edge set is touched: the mirrored edge (destination,
// source) must be inserted explicitly by callers that want it.
// Complexity: O(deg(source))
func (g *Graph) InsertEdge(source, destination int) {
	from, to := source-1, destination-1
	if from == to || !g.inRange(from) || !g.inRange(to) {
		return
	}
	if slices.Contains(g.vertices[from].edges, to) {
		return
	}
	g.vertices[from].edges = append(g.vertices[from].edges, to)
}

// RemoveEdge deletes destination from source's edge set.
//
// Index conversion and validation mirror InsertEdge. When the edge is
// absent the call is a silent no-op; when present, exactly that entry is
// removed and the relative order of the remaining neighbors is kept.
// Complexity: O(deg(source))
func (g *Graph) RemoveEdge(source, destination int) {
	from, to := source-1, destination-1
	if from == to || !g.inRange(from) || !g.inRange(to) {
		return
	}
	if i := slices.Index(g.vertices[from].edges, to); i >= 0 {
		g.vertices[from].edges = slices.Delete(g.vertices[from].edges, i, i+1)
	}
}

// HasEdge reports whether destination is in source's edge set.
// Arguments are one-based, matching InsertEdge; any invalid input
// yields false.
func (g *Graph) HasEdge(source, destination int) bool {
	from, to := source-1, destination-1
	if from == to || !g.inRange(from) || !g.inRange(to) {
		return false
	}

	return slices.Contains(g.vertices[from].edges, to)
}

// Neighbors returns a read-only, restartable view over the edge set of
// the zero-based vertex v, yielding neighbor indices in insertion order.
// An out-of-range v yields the empty sequence. The view reads live graph
// state: do not mutate the graph while draining it.
func (g *Graph) Neighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !g.inRange(v) {
			return
		}
		for _, u := range g.vertices[v].edges {
			if !yield(u) {
				return
			}
		}
	}
}

// Degree returns the size of v's edge set, or 0 for an out-of-range v.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.vertices[v].edges)
}

// Clone returns a deep copy of the graph: labels and edge sets are
// copied, so mutations of one graph never show through the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{vertices: make([]vertex, len(g.vertices))}
	for i, vx := range g.vertices {
		clone.vertices[i] = vertex{
			label: vx.label,
			edges: slices.Clone(vx.edges),
		}
	}

	return clone
}

// inRange reports whether the zero-based index v addresses a vertex.
func (g *Graph) inRange(v int) bool {
	return 0 <= v && v < len(g.vertices)
}
