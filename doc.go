// Package motif enumerates fixed-size connected induced subgraphs of
// small, in-memory graphs.
//
// 🚀 What is motif?
//
//	A compact library built around one algorithm — extension-set
//	backtracking (ESU) — and the pieces needed to feed and observe it:
//		• core/     — adjacency-list Graph with labeled, index-stable vertices
//		• esu/      — the subgraph enumerator (anchor loop, extension sets)
//		• graphtxt/ — loader for the classic "count, labels, edge pairs" format
//		• display/  — styled console listings of graphs and enumerations
//		• cmd/motif — CLI gluing the above together
//
// ✨ Why choose motif?
//
//   - Exactly-once – every connected induced subgraph of size k is
//     discovered from a single anchor, never duplicated
//   - Deterministic – identical inputs yield identical emission order
//   - Small on purpose – graphs are capped at 100 vertices, the domain
//     this technique is built for (network motif census on toy graphs)
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    5   3
//	    └─4─┘
//
//	a 5-cycle holds exactly five connected triples: {1,2,3}, {2,3,4},
//	{3,4,5}, {4,5,1}, {5,1,2} — and esu.Enumerate finds each once.
//
//	go get github.com/katalvlaran/motif
package motif
