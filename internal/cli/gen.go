package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pacetools/ocmgraph/pkg/gen"
	"github.com/pacetools/ocmgraph/pkg/pace"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	fixed  int
	free   int
	edges  int
	seed   uint64
	output string // output file path (stdout if empty)
}

// genCommand creates the "gen" command that generates a uniformly random
// bipartite instance with an exact edge count.
func (c *CLI) genCommand() *cobra.Command {
	opts := genOpts{fixed: 10, free: 10, edges: 20}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random OCM instance",
		Long: `Generate a bipartite OCM instance with exactly the requested number of
distinct fixed-free edges, sampled uniformly.

Examples:
  ocmgraph gen --fixed 10 --free 12 --edges 40 -o instance.gr
  ocmgraph gen --fixed 5 --free 5 --edges 25 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := c.newRNG(opts.seed, cmd.Flags().Changed("seed"))

			prog := newProgress(c.Logger)
			g, err := gen.Random(rng, opts.fixed, opts.free, opts.edges)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d edges", g.EdgeCount()))

			if opts.output == "" {
				return pace.Write(g, os.Stdout)
			}
			if err := pace.WriteFile(g, opts.output); err != nil {
				return err
			}
			printSuccess("Wrote instance")
			printFile(opts.output)
			printStats(g.FixedNodeCount(), g.FreeNodeCount(), g.EdgeCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.fixed, "fixed", opts.fixed, "number of fixed-layer nodes")
	cmd.Flags().IntVar(&opts.free, "free", opts.free, "number of free-layer nodes")
	cmd.Flags().IntVar(&opts.edges, "edges", opts.edges, "number of distinct edges")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (time-based if unset)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .gr file (stdout if empty)")

	return cmd
}
