// Package core defines the adjacency-list Graph consumed by the esu
// enumerator, with index-stable labeled vertices and ordered,
// duplicate-free edge sets.
//
// What:
//
//   - Graph owns a fixed number of vertices, chosen at construction and
//     capped at MaxVertices (100).
//   - Vertices are addressed by zero-based index; loaders and edge
//     mutators speak the classic one-based dialect of the input format.
//   - Each vertex holds one opaque Label and an ordered edge set that
//     records neighbors in insertion order, without duplicates or loops.
//   - Edges are stored exactly as inserted: adding (a,b) never mirrors
//     (b,a). Callers wanting undirected connectivity insert both.
//
// Why:
//
//   - The enumerator needs a read-only adjacency view with a stable,
//     reproducible neighbor order; append-only slices give both.
//   - The permissive mutation contract (silent no-ops on self-loops and
//     out-of-range indices) matches the input format this store was
//     designed around, where malformed records are simply skipped.
//
// Concurrency:
//
//   - None. A Graph is built once, then read; no locking is provided and
//     mutating a Graph while iterating Neighbors is undefined.
//
// Complexity:
//
//   - InsertEdge / RemoveEdge / HasEdge: O(deg) scan of one edge set.
//   - Neighbors: O(1) to obtain, O(deg) to drain.
//
// Errors:
//
//   - ErrNegativeSize: construction with size < 0.
//   - ErrTooManyVertices: construction with size > MaxVertices.
//   - ErrVertexOutOfRange: label access with an index outside [0,size).
package core
