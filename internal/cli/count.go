package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacetools/ocmgraph/pkg/pace"
)

// countOpts holds the command-line flags for the count command.
type countOpts struct {
	ordering string // candidate ordering file (default ascending if empty)
	fast     bool   // use the Fenwick-tree counter
}

// countCommand creates the "count" command that reports the edge crossings
// of a .gr instance under a free-layer ordering.
func (c *CLI) countCommand() *cobra.Command {
	var opts countOpts

	cmd := &cobra.Command{
		Use:   "count <file.gr>",
		Short: "Count edge crossings of an instance",
		Long: `Count edge crossings of a .gr instance. Without --ordering the free
layer is drawn in ascending order; with it, the file must hold a
permutation of the free nodes (1-indexed within the layer).

Examples:
  ocmgraph count instance.gr
  ocmgraph count instance.gr --ordering candidate.ord
  ocmgraph count big-instance.gr --fast`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pace.ReadFile(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debugf("Parsed %s: %d fixed, %d free, %d edges",
				args[0], g.FixedNodeCount(), g.FreeNodeCount(), g.EdgeCount())

			ordering := g.DefaultOrdering()
			source := "default (ascending)"
			if opts.ordering != "" {
				ordering, err = readOrderingFile(opts.ordering, g)
				if err != nil {
					return err
				}
				source = opts.ordering
			}

			prog := newProgress(c.Logger)
			var crossings int
			if opts.fast {
				crossings, err = g.CountCrossingsFast(ordering)
			} else {
				crossings, err = g.CountCrossingsOrdered(ordering)
			}
			if err != nil {
				return err
			}
			prog.done("Counted crossings")

			printStats(g.FixedNodeCount(), g.FreeNodeCount(), g.EdgeCount())
			printKeyValue("ordering", source)
			printKeyValue("crossings", fmt.Sprintf("%d", crossings))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ordering, "ordering", "", "free-layer ordering file")
	cmd.Flags().BoolVar(&opts.fast, "fast", false, "use the Fenwick-tree counter")

	return cmd
}
