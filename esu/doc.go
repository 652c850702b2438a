// Package esu enumerates all connected induced subgraphs of a fixed
// size k in a core.Graph, using extension-set backtracking (the ESU
// technique known from network-motif mining).
//
// What:
//
//   - Enumerate(g, k, opts...): every connected induced subgraph with
//     exactly k vertices, each discovered exactly once.
//   - Anchoring: each subgraph is found under its minimum-index vertex.
//     The anchor loop visits every vertex as a potential anchor; the
//     exclusive-neighborhood rule (only candidates with index above the
//     anchor that are not yet adjacent to the growing subgraph) keeps
//     sibling branches from rediscovering each other's results.
//   - Emission: subgraphs appear in discovery order as one-based vertex
//     index sequences, matching the dialect of the text input format.
//
// Why:
//
//   - Motif census: count how often a small pattern size occurs.
//   - Teaching: the algorithm is the canonical exactly-once subgraph
//     enumeration and small enough to read in one sitting.
//
// Determinism:
//
//   - Candidates are consumed FIFO, in the order the adjacency lists
//     discover them, so two runs over an unmodified graph emit
//     identical sequences.
//
// Complexity:
//
//   - Output-sensitive: O(S · k · d) time for S emitted subgraphs with
//     maximum degree d; recursion depth is bounded by k.
//   - Memory: O(k + size) per active branch (subgraph copy, extension
//     queue, membership index).
//
// Options:
//
//   - WithOnSubgraph(fn): observer invoked per emitted subgraph, in
//     emission order. Enumeration always runs to exhaustion.
//
// Errors:
//
//   - ErrNilGraph:        g is nil.
//   - ErrSizeOutOfRange:  k < 1 or k > g.Size().
package esu
