package bigraph

import (
	"fmt"
	"slices"
)

// Graph is a two-layer bipartite graph for one-sided crossing minimization
// instances. The fixed layer occupies indices [0, FixedNodeCount) and keeps
// its ascending order; the free layer occupies [FixedNodeCount, NodeCount)
// and may be reordered for crossing counting.
//
// Edges are undirected and stored symmetrically: v appears among u's
// neighbors exactly when u appears among v's. The structure permits edges
// within a layer, but crossing counts are only meaningful when every edge
// connects a fixed index to a free index - that contract is the caller's.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent mutation; a fully built graph can be
// queried from multiple goroutines.
type Graph struct {
	fixed int
	free  int
	edges int
	adj   [][]int // per-node neighbor lists, ascending, no duplicates
}

// New creates an empty graph with the given layer sizes.
// Both counts must be non-negative.
func New(fixedNodes, freeNodes int) *Graph {
	return &Graph{
		fixed: fixedNodes,
		free:  freeNodes,
		adj:   make([][]int, fixedNodes+freeNodes),
	}
}

// FixedNodeCount returns the number of nodes in the fixed layer.
func (g *Graph) FixedNodeCount() int { return g.fixed }

// FreeNodeCount returns the number of nodes in the free layer.
func (g *Graph) FreeNodeCount() int { return g.free }

// NodeCount returns the total number of nodes across both layers.
func (g *Graph) NodeCount() int { return g.fixed + g.free }

// EdgeCount returns the number of distinct edges inserted so far.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge inserts an undirected edge between u and v, keeping both
// adjacency lists sorted. It reports whether the edge was newly added;
// inserting an existing edge is a no-op that returns false and leaves
// EdgeCount unchanged. Returns ErrIndexOutOfRange if either index is
// outside [0, NodeCount).
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if err := g.checkIndex(u); err != nil {
		return false, err
	}
	if err := g.checkIndex(v); err != nil {
		return false, err
	}

	added := insertSorted(&g.adj[u], v)
	if u != v {
		insertSorted(&g.adj[v], u)
	}
	if added {
		g.edges++
	}
	return added, nil
}

// HasEdge reports whether an edge between u and v exists.
// Returns ErrIndexOutOfRange if either index is outside [0, NodeCount).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkIndex(u); err != nil {
		return false, err
	}
	if err := g.checkIndex(v); err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(g.adj[u], v)
	return found, nil
}

// Neighbors returns the neighbors of node u in ascending index order.
// Returns nil if u is out of range or has no neighbors. The returned slice
// should not be modified - use it as a read-only view.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}

// Degree returns the number of neighbors of node u, or 0 if u is out of range.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= len(g.adj) {
		return 0
	}
	return len(g.adj[u])
}

// IsFixed reports whether u is an index in the fixed layer.
func (g *Graph) IsFixed(u int) bool { return u >= 0 && u < g.fixed }

// IsFree reports whether u is an index in the free layer.
func (g *Graph) IsFree(u int) bool { return u >= g.fixed && u < g.fixed+g.free }

// DefaultOrdering returns the free-layer indices in ascending order,
// the ordering assumed by [Graph.CountCrossings].
func (g *Graph) DefaultOrdering() []int {
	ordering := make([]int, g.free)
	for i := range ordering {
		ordering[i] = g.fixed + i
	}
	return ordering
}

func (g *Graph) checkIndex(u int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrIndexOutOfRange, u, len(g.adj))
	}
	return nil
}

// insertSorted inserts v into the sorted slice *s if absent and reports
// whether an insertion happened.
func insertSorted(s *[]int, v int) bool {
	pos, found := slices.BinarySearch(*s, v)
	if found {
		return false
	}
	*s = slices.Insert(*s, pos, v)
	return true
}
