// Package core types: Graph, its vertices, sentinel errors, and the
// NewGraph-style constructor.
package core

import "errors"

// MaxVertices is the documented ceiling on graph size. The store itself
// allocates exactly what it needs; the cap only bounds construction.
const MaxVertices = 100

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates a construction request with size < 0.
	ErrNegativeSize = errors.New("core: negative vertex count")

	// ErrTooManyVertices indicates a construction request above MaxVertices.
	ErrTooManyVertices = errors.New("core: vertex count exceeds ceiling")

	// ErrVertexOutOfRange indicates a label access outside [0, size).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// vertex pairs one opaque label with the head of its edge set.
// Edge sets are append-only slices of zero-based neighbor indices,
// duplicate-free and self-loop-free by construction.
type vertex struct {
	label string
	edges []int
}

// Graph is an adjacency-list store over size vertices, size fixed at
// construction. Vertex indices are stable for the graph's lifetime;
// no renumbering occurs on edge mutation.
type Graph struct {
	vertices []vertex
}

// New constructs a Graph with exactly size vertices and no edges.
// Returns ErrNegativeSize or ErrTooManyVertices when size is outside
// [0, MaxVertices].
// Complexity: O(size)
func New(size int) (*Graph, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size > MaxVertices {
		return nil, ErrTooManyVertices
	}

	return &Graph{vertices: make([]vertex, size)}, nil
}
