// Command motif loads a plain-text graph description and either lists
// the graph or enumerates its connected induced subgraphs of a given
// size.
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "motif",
		Short:         "Connected induced subgraph enumeration on small graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newShowCommand(),
		newEnumerateCommand(),
	)

	return cmd
}
