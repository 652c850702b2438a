// Package graphtxt loads core graphs from the classic plain-text
// description format:
//
//	5                  vertex count
//	Aurora Bridge      one label line per vertex
//	Fremont Troll
//	...
//	1   2              one-based (from, to) edge records
//	2   4
//	0   0              sentinel pair (or end of input)
//
// Each edge record is handed to Graph.InsertEdge exactly as written:
// the loader does not mirror edges, so undirected inputs must list both
// directions. Malformed or truncated input stops consumption; the
// partially built graph is returned alongside a sentinel error so the
// caller owns the reporting.
//
// Errors:
//
//   - ErrBadVertexCount: the first record is not a usable vertex count.
//   - ErrTruncated: input ended before all labels were read.
//   - ErrBadEdgeRecord: an edge line did not parse as two integers.
package graphtxt
