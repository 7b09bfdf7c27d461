// Package pace reads and writes bipartite OCM instances in the PACE-style
// .gr text format.
//
// The format is line based: comment lines start with "c" and are ignored,
// as are blank lines. The first remaining line must be the problem line
//
//	p <descriptor> <fixedNodes> <freeNodes> <edges>
//
// followed by one line per edge holding two whitespace-separated positive
// integers: the 1-indexed fixed node and the 1-indexed free node (counted
// within its own layer). The declared edge count must match the number of
// distinct edges actually read.
package pace

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

// DefaultDescriptor is the problem descriptor token written by [Write].
const DefaultDescriptor = "ocm"

// Sentinel errors for .gr parsing. I/O failures are returned as wrapped
// *os.PathError values, distinct from all of these.
var (
	// ErrMissingHeader is returned when the input ends, or a non-comment
	// line appears, before a problem line was seen.
	ErrMissingHeader = errors.New("missing problem line")

	// ErrMalformedHeader is returned when the problem line does not consist
	// of "p", a descriptor, and three non-negative integer counts.
	ErrMalformedHeader = errors.New("malformed problem line")

	// ErrMalformedEdge is returned when an edge line does not consist of
	// exactly two positive integers.
	ErrMalformedEdge = errors.New("malformed edge line")

	// ErrEdgeCountMismatch is returned when the number of distinct edges
	// read differs from the count declared on the problem line.
	ErrEdgeCountMismatch = errors.New("edge count mismatch")
)

// header is the parsed problem line. It only lives for the duration of a
// parse: the descriptor and declared counts are validated and discarded.
type header struct {
	descriptor string
	fixedNodes int
	freeNodes  int
	edges      int
}

// ReadFile parses the .gr file at path into a graph.
func ReadFile(path string) (*bigraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a .gr description from r into a graph.
// Use ReadFile for files or pass a bytes.Reader for in-memory data.
func Read(r io.Reader) (*bigraph.Graph, error) {
	sc := bufio.NewScanner(r)

	var g *bigraph.Graph
	var h header
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}

		if g == nil {
			// The first payload line must be the problem line.
			parsed, err := parseHeader(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			h = parsed
			g = bigraph.New(h.fixedNodes, h.freeNodes)
			continue
		}

		u, v, err := parseEdgeLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := g.AddEdge(u-1, h.fixedNodes+v-1); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if g == nil {
		return nil, ErrMissingHeader
	}
	if g.EdgeCount() != h.edges {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrEdgeCountMismatch, h.edges, g.EdgeCount())
	}
	return g, nil
}

// WriteFile writes the graph to path in .gr format.
// The file is created with 0644 permissions.
func WriteFile(g *bigraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Write writes the graph to w in .gr format. Edges are emitted in ascending
// fixed-node order, each as the 1-indexed fixed node followed by the
// 1-indexed free node within its layer. Edges not connecting a fixed node
// to a free node cannot be represented and are skipped.
func Write(g *bigraph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p %s %d %d %d\n", DefaultDescriptor, g.FixedNodeCount(), g.FreeNodeCount(), g.EdgeCount())
	for u := 0; u < g.FixedNodeCount(); u++ {
		for _, v := range g.Neighbors(u) {
			if g.IsFree(v) {
				fmt.Fprintf(bw, "%d %d\n", u+1, v-g.FixedNodeCount()+1)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Marshal returns the .gr encoding of the graph.
func Marshal(g *bigraph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseHeader(text string) (header, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || fields[0] != "p" {
		return header{}, fmt.Errorf("%w: expected a line starting with %q, got %q", ErrMissingHeader, "p", text)
	}
	if len(fields) != 5 {
		return header{}, fmt.Errorf("%w: expected 5 tokens, got %d", ErrMalformedHeader, len(fields))
	}

	h := header{descriptor: fields[1]}
	for i, dst := range []*int{&h.fixedNodes, &h.freeNodes, &h.edges} {
		n, err := strconv.Atoi(fields[2+i])
		if err != nil || n < 0 {
			return header{}, fmt.Errorf("%w: %q is not a non-negative integer", ErrMalformedHeader, fields[2+i])
		}
		*dst = n
	}
	return h, nil
}

func parseEdgeLine(text string) (u, v int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 tokens, got %d", ErrMalformedEdge, len(fields))
	}
	for i, dst := range []*int{&u, &v} {
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("%w: %q is not a positive integer", ErrMalformedEdge, fields[i])
		}
		*dst = n
	}
	return u, v, nil
}
