// Package render turns bipartite OCM instances into Graphviz DOT and SVG
// two-layer drawings for visual inspection of crossings.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

// ToDOT converts a graph to Graphviz DOT for a two-layer drawing. The fixed
// layer is pinned to the top rank in ascending order; the free layer forms
// the bottom rank in the given left-to-right ordering. Pass nil to use the
// graph's default ascending ordering; any other ordering must be a valid
// permutation of the free index range.
//
// Left-to-right order within each rank is enforced with invisible chain
// edges, so the drawing reflects exactly the ordering whose crossings the
// counters report.
func ToDOT(g *bigraph.Graph, ordering []int) (string, error) {
	if ordering == nil {
		ordering = g.DefaultOrdering()
	} else if err := g.CheckOrdering(ordering); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	writeRank(&buf, "fixed", "lightblue", fixedIDs(g))
	writeRank(&buf, "free", "white", orderedIDs(g, ordering))

	buf.WriteString("\n")
	for u := 0; u < g.FixedNodeCount(); u++ {
		for _, v := range g.Neighbors(u) {
			if g.IsFree(v) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(g, u), nodeID(g, v))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRank emits one rank=same block with invisible edges that pin the
// left-to-right order of its nodes.
func writeRank(buf *bytes.Buffer, name, fill string, ids []string) {
	fmt.Fprintf(buf, "  subgraph %s {\n", name)
	buf.WriteString("    rank=same;\n")
	for _, id := range ids {
		fmt.Fprintf(buf, "    %q [fillcolor=%s];\n", id, fill)
	}
	for i := 0; i+1 < len(ids); i++ {
		fmt.Fprintf(buf, "    %q -- %q [style=invis];\n", ids[i], ids[i+1])
	}
	buf.WriteString("  }\n")
}

func fixedIDs(g *bigraph.Graph) []string {
	ids := make([]string, g.FixedNodeCount())
	for u := range ids {
		ids[u] = nodeID(g, u)
	}
	return ids
}

func orderedIDs(g *bigraph.Graph, ordering []int) []string {
	ids := make([]string, len(ordering))
	for i, v := range ordering {
		ids[i] = nodeID(g, v)
	}
	return ids
}

// nodeID labels fixed nodes a1..aF and free nodes b1..bB, both 1-indexed
// within their layer, matching the .gr file numbering.
func nodeID(g *bigraph.Graph, u int) string {
	if g.IsFixed(u) {
		return fmt.Sprintf("a%d", u+1)
	}
	return fmt.Sprintf("b%d", u-g.FixedNodeCount()+1)
}
