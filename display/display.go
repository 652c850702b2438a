package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/esu"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	labelStyle = lipgloss.NewStyle().Bold(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F87171"))
)

// Renderer writes styled listings to a single destination.
type Renderer struct {
	w io.Writer
}

// NewRenderer binds a Renderer to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Graph prints the descriptive listing of every vertex: its label
// followed by one "from to" row per stored edge, in one-based form and
// edge-set order.
func (r *Renderer) Graph(g *core.Graph) error {
	if _, err := fmt.Fprintln(r.w, headerStyle.Render("Description\t\t\tFrom\tTo")); err != nil {
		return err
	}
	for v := 0; v < g.Size(); v++ {
		label, _ := g.Label(v)
		if _, err := fmt.Fprintln(r.w, labelStyle.Render(label)); err != nil {
			return err
		}
		for u := range g.Neighbors(v) {
			if _, err := fmt.Fprintf(r.w, "\t\t\t\t%d\t%d\n", v+1, u+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// Edge prints a single one-based (source, destination) pair, or an
// error line when either endpoint is out of the graph's range.
func (r *Renderer) Edge(g *core.Graph, source, destination int) error {
	if source < 1 || source > g.Size() || destination < 1 || destination > g.Size() {
		_, err := fmt.Fprintln(r.w, errorStyle.Render("DISPLAY ERROR: No path exists"))

		return err
	}
	_, err := fmt.Fprintf(r.w, "%d\t%d\n", source, destination)

	return err
}

// Subgraphs prints every emitted subgraph of res, one per line, as
// space-separated one-based vertex indices in discovery order.
func (r *Renderer) Subgraphs(res *esu.Result) error {
	header := fmt.Sprintf("%d connected subgraph(s) of size %d", res.Count(), res.K)
	if _, err := fmt.Fprintln(r.w, headerStyle.Render(header)); err != nil {
		return err
	}
	for _, sub := range res.Subgraphs {
		parts := make([]string, len(sub))
		for i, v := range sub {
			parts[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintln(r.w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return nil
}
