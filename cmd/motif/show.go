package main

import (
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/display"
	"github.com/katalvlaran/motif/graphtxt"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show GRAPH_FILE",
		Short: "Print the vertex labels and adjacency listing of a graph",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			return display.NewRenderer(os.Stdout).Graph(g)
		},
	}
}

// loadGraph reads path and reports partial input upward: a graph built
// from truncated input is still usable for listing and enumeration, so
// only a total failure aborts.
func loadGraph(path string) (*core.Graph, error) {
	g, err := graphtxt.LoadFile(path)
	if g == nil {
		return nil, err
	}
	if err != nil {
		klog.Warningf("partial graph loaded from %s: %v", path, err)
	}

	return g, nil
}
