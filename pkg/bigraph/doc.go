// Package bigraph provides the bipartite graph structure for one-sided
// crossing minimization (OCM) instances.
//
// # Overview
//
// An OCM instance is a two-layer drawing: the fixed layer keeps its given
// order, the free layer may be permuted. This package represents such
// instances and counts how many edge pairs cross under a given free-layer
// ordering. It deliberately contains no solver - producing a good ordering
// is the job of whoever calls the counters.
//
// Node indices double as the layering: fixed nodes occupy [0, F), free
// nodes [F, F+B). The "default ordering" of the free layer is simply
// ascending index.
//
// # Basic Usage
//
// Create a graph with [New], add edges with [Graph.AddEdge], then query:
//
//	g := bigraph.New(2, 2)
//	g.AddEdge(0, 2)
//	g.AddEdge(0, 3)
//	g.AddEdge(1, 2)
//	crossings := g.CountCrossings()
//
// Edges are undirected and inserted symmetrically. Adding an existing edge
// is a no-op that reports false. There is no edge removal - a graph is
// built once and then queried.
//
// # Crossing Counters
//
// [Graph.CountCrossings] and [Graph.CountCrossingsOrdered] implement the
// direct pairwise definition: for every pair of fixed nodes u < v, every
// neighbor pair (a, b) with b drawn left of a is one crossing. The pairwise
// form is quadratic in edges but trivially auditable.
//
// [Graph.CountCrossingsFast] computes the same count by sorting edges along
// the fixed layer and counting inversions of their free endpoints with a
// Fenwick tree, in O(E log B) time. The two always agree; the fast variant
// exists for evaluating many candidate orderings on large instances.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. A fully built
// graph is effectively immutable and may be queried from multiple
// goroutines at once.
package bigraph
