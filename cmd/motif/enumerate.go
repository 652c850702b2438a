package main

import (
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motif/display"
	"github.com/katalvlaran/motif/esu"
)

func newEnumerateCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "enumerate GRAPH_FILE",
		Short: "Enumerate all connected induced subgraphs of a fixed size",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			res, err := esu.Enumerate(g, size)
			if err != nil {
				return err
			}
			klog.V(1).Infof("enumerated %d subgraph(s) of size %d over %d vertices",
				res.Count(), size, g.Size())

			return display.NewRenderer(os.Stdout).Subgraphs(res)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "k", 3, "subgraph size to enumerate (1..graph size)")

	return cmd
}
