package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pacetools/ocmgraph/pkg/gen"
	"github.com/pacetools/ocmgraph/pkg/pace"
)

// ladderOpts holds the command-line flags for the ladder command.
type ladderOpts struct {
	fixed   int
	seed    uint64
	output  string // output .gr path (stdout if empty)
	witness string // witness ordering path (printed if empty)
}

// ladderCommand creates the "ladder" command that generates a crossing-free
// instance together with the ordering that realizes zero crossings.
func (c *CLI) ladderCommand() *cobra.Command {
	opts := ladderOpts{fixed: 10}

	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Generate a crossing-free OCM instance with its witness ordering",
		Long: `Generate an instance with equal layer sizes that admits a zero-crossing
drawing. The free layer is shuffled, so the default ascending ordering
usually crosses - the printed witness ordering is the one that does not.

Examples:
  ocmgraph ladder --fixed 8 -o ladder.gr --witness ladder.ord
  ocmgraph ladder --fixed 5 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := c.newRNG(opts.seed, cmd.Flags().Changed("seed"))

			g, witness, err := gen.Ladder(rng, opts.fixed)
			if err != nil {
				return err
			}

			// Sanity check the construction before handing it out.
			crossings, err := g.CountCrossingsOrdered(witness)
			if err != nil {
				return fmt.Errorf("verify witness: %w", err)
			}
			if crossings != 0 {
				return fmt.Errorf("verify witness: counted %d crossings, want 0", crossings)
			}
			c.Logger.Debugf("Witness verified crossing-free for %d fixed nodes", opts.fixed)

			if opts.output == "" {
				if err := pace.Write(g, os.Stdout); err != nil {
					return err
				}
			} else {
				if err := pace.WriteFile(g, opts.output); err != nil {
					return err
				}
				printSuccess("Wrote instance")
				printFile(opts.output)
				printStats(g.FixedNodeCount(), g.FreeNodeCount(), g.EdgeCount())
			}

			if opts.witness == "" {
				parts := make([]string, len(witness))
				for i, v := range witness {
					parts[i] = strconv.Itoa(v - g.FixedNodeCount() + 1)
				}
				printDetail("witness: %s", strings.Join(parts, " "))
				return nil
			}
			if err := writeOrderingFile(opts.witness, g, witness); err != nil {
				return err
			}
			printFile(opts.witness)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.fixed, "fixed", opts.fixed, "number of nodes per layer")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (time-based if unset)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .gr file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.witness, "witness", "w", "", "witness ordering file (printed if empty)")

	return cmd
}
