package graphtxt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/motif/core"
)

var (
	// ErrBadVertexCount indicates the first input record is missing or
	// does not parse as a vertex count.
	ErrBadVertexCount = errors.New("graphtxt: malformed vertex count")

	// ErrTruncated indicates input ended before every vertex label was
	// read; the partial graph built so far is still returned.
	ErrTruncated = errors.New("graphtxt: input truncated")

	// ErrBadEdgeRecord indicates an edge line did not parse as two
	// integers; consumption stops at that line.
	ErrBadEdgeRecord = errors.New("graphtxt: malformed edge record")
)

// Load reads a graph description from r.
//
// On malformed input, Load stops consuming and returns the graph in
// whatever partial state was built together with a sentinel error —
// the caller decides whether a partial graph is usable. A nil graph is
// returned only when no graph could be constructed at all.
func Load(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)

	// 1. Vertex count
	if !sc.Scan() {
		return nil, fmt.Errorf("graphtxt: empty input: %w", ErrBadVertexCount)
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("graphtxt: vertex count %q: %w", sc.Text(), ErrBadVertexCount)
	}
	g, err := core.New(count)
	if err != nil {
		return nil, fmt.Errorf("graphtxt: %w", err)
	}

	// 2. One raw label line per vertex
	for v := 0; v < count; v++ {
		if !sc.Scan() {
			return g, fmt.Errorf("graphtxt: %d of %d labels read: %w", v, count, ErrTruncated)
		}
		// count is already validated, the index cannot miss
		_ = g.SetLabel(v, sc.Text())
	}

	// 3. Edge records until the sentinel pair or end of input
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var src, dst int
		if _, err = fmt.Sscan(line, &src, &dst); err != nil {
			return g, fmt.Errorf("graphtxt: edge record %q: %w", line, ErrBadEdgeRecord)
		}
		if src == 0 && dst == 0 {
			return g, nil
		}
		g.InsertEdge(src, dst)
	}
	if err = sc.Err(); err != nil {
		return g, fmt.Errorf("graphtxt: read: %w", err)
	}

	return g, nil
}

// LoadFile opens path and loads the graph it describes. The partial
// graph semantics of Load carry over unchanged.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphtxt: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}
