package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

// Ordering files hold free nodes as whitespace-separated positive integers,
// 1-indexed within the free layer - the same numbering the .gr edge lines
// use for their second column. Lines starting with "c" are comments.

// readOrderingFile parses an ordering file and converts it to the graph's
// global free-node indices. The result is validated against g.
func readOrderingFile(path string, g *bigraph.Graph) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var ordering []int
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%s: %q is not a positive free-node number", path, field)
			}
			ordering = append(ordering, g.FixedNodeCount()+n-1)
		}
	}

	if err := g.CheckOrdering(ordering); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ordering, nil
}

// writeOrderingFile writes the ordering as one line of space-separated
// free-node numbers, 1-indexed within the free layer.
func writeOrderingFile(path string, g *bigraph.Graph, ordering []int) error {
	parts := make([]string, len(ordering))
	for i, v := range ordering {
		parts[i] = strconv.Itoa(v - g.FixedNodeCount() + 1)
	}
	data := strings.Join(parts, " ") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
