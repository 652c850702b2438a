// Package esu types and options for subgraph enumeration.
package esu

import "errors"

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Enumerate.
	ErrNilGraph = errors.New("esu: graph is nil")

	// ErrSizeOutOfRange indicates the requested subgraph size k lies
	// outside [1, g.Size()]: no well-defined output exists for such k.
	ErrSizeOutOfRange = errors.New("esu: subgraph size out of range")
)

// Option configures optional behavior of Enumerate.
// Use with Enumerate(g, k, opts...).
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// OnSubgraph, if non-nil, is invoked once per emitted subgraph with
	// its one-based vertex indices in discovery order. The slice is the
	// same one recorded in Result.Subgraphs; treat it as read-only.
	// Enumeration always runs to exhaustion — the observer cannot abort.
	OnSubgraph func(vertices []int)
}

// DefaultOptions returns an Options struct with no observer installed.
func DefaultOptions() Options {
	return Options{OnSubgraph: nil}
}

// WithOnSubgraph returns an Option that installs fn as the per-subgraph
// observer. Useful for streaming consumers that do not want to wait for
// the full Result.
func WithOnSubgraph(fn func(vertices []int)) Option {
	return func(o *Options) {
		o.OnSubgraph = fn
	}
}

// Result captures the outcome of one enumeration run.
type Result struct {
	// K is the requested subgraph size.
	K int

	// Subgraphs lists every connected induced subgraph of size K, in
	// discovery order. Each entry holds one-based vertex indices, the
	// anchor first, the rest in the order they joined the subgraph.
	Subgraphs [][]int
}

// Count returns the number of subgraphs emitted.
func (r *Result) Count() int { return len(r.Subgraphs) }
