package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
	"github.com/pacetools/ocmgraph/pkg/gen"
	"github.com/pacetools/ocmgraph/pkg/pace"
)

// batchManifest is the TOML description of a set of instances to generate.
//
//	out_dir = "instances"
//
//	[[instance]]
//	name  = "sparse-small"
//	kind  = "random"
//	fixed = 10
//	free  = 12
//	edges = 30
//	seed  = 1
//
//	[[instance]]
//	name  = "ladder-8"
//	kind  = "ladder"
//	fixed = 8
//	seed  = 2
type batchManifest struct {
	OutDir    string          `toml:"out_dir"`
	Instances []batchInstance `toml:"instance"`
}

// batchInstance describes one instance. Random instances use Fixed, Free
// and Edges; ladder instances use Fixed only and additionally produce a
// .ord witness file next to the .gr file.
type batchInstance struct {
	Name  string `toml:"name"`
	Kind  string `toml:"kind"`
	Fixed int    `toml:"fixed"`
	Free  int    `toml:"free"`
	Edges int    `toml:"edges"`
	Seed  uint64 `toml:"seed"`
}

var errBadManifest = errors.New("invalid batch manifest")

// batchCommand creates the "batch" command that generates all instances
// described by a TOML manifest.
func (c *CLI) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest.toml>",
		Short: "Generate a set of instances from a TOML manifest",
		Long: `Generate all instances described by a TOML manifest. Each [[instance]]
entry produces <out_dir>/<name>.gr; ladder instances additionally produce
<out_dir>/<name>.ord holding the zero-crossing witness ordering.

Example manifest:
  out_dir = "instances"

  [[instance]]
  name  = "sparse-small"
  kind  = "random"
  fixed = 10
  free  = 12
  edges = 30
  seed  = 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(manifest.OutDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", manifest.OutDir, err)
			}

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Generating %d instances...", len(manifest.Instances)))
			spinner.Start()

			prog := newProgress(c.Logger)
			for _, inst := range manifest.Instances {
				if spinner.Cancelled() {
					spinner.Stop()
					return cmd.Context().Err()
				}
				if err := c.generateInstance(manifest.OutDir, inst); err != nil {
					spinner.StopWithError(fmt.Sprintf("Instance %q failed", inst.Name))
					return err
				}
				c.Logger.Debugf("Generated instance %q", inst.Name)
			}

			spinner.StopWithSuccess(fmt.Sprintf("Generated %d instances", len(manifest.Instances)))
			printFile(manifest.OutDir)
			prog.done("Batch complete")
			return nil
		},
	}
}

func loadManifest(path string) (batchManifest, error) {
	var manifest batchManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return manifest, fmt.Errorf("parse %s: %w", path, err)
	}
	if manifest.OutDir == "" {
		manifest.OutDir = "."
	}
	for i, inst := range manifest.Instances {
		if inst.Name == "" {
			return manifest, fmt.Errorf("%w: instance %d has no name", errBadManifest, i)
		}
		if inst.Kind != "random" && inst.Kind != "ladder" {
			return manifest, fmt.Errorf("%w: instance %q has kind %q, want %q or %q",
				errBadManifest, inst.Name, inst.Kind, "random", "ladder")
		}
	}
	return manifest, nil
}

func (c *CLI) generateInstance(outDir string, inst batchInstance) error {
	rng := c.newRNG(inst.Seed, true)

	var (
		g       *bigraph.Graph
		witness []int
		err     error
	)
	switch inst.Kind {
	case "random":
		g, err = gen.Random(rng, inst.Fixed, inst.Free, inst.Edges)
	case "ladder":
		g, witness, err = gen.Ladder(rng, inst.Fixed)
	}
	if err != nil {
		return fmt.Errorf("instance %q: %w", inst.Name, err)
	}

	grPath := filepath.Join(outDir, inst.Name+".gr")
	if err := pace.WriteFile(g, grPath); err != nil {
		return fmt.Errorf("instance %q: %w", inst.Name, err)
	}
	if witness != nil {
		if err := writeOrderingFile(filepath.Join(outDir, inst.Name+".ord"), g, witness); err != nil {
			return fmt.Errorf("instance %q: %w", inst.Name, err)
		}
	}
	return nil
}
