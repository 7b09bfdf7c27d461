// Package gen constructs bipartite OCM instances: uniformly random graphs
// with an exact edge count, and deterministic "ladder" graphs that admit a
// zero-crossing drawing together with the witness ordering that realizes it.
//
// All generators take an explicit *rand.Rand so callers control seeding and
// tests stay reproducible. Same source state and parameters produce the
// same graph.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

// Sentinel errors for instance generation.
var (
	// ErrNegativeCount is returned when a node or edge count is negative.
	ErrNegativeCount = errors.New("counts must be non-negative")

	// ErrTooManyEdges is returned by [Random] when the requested edge count
	// exceeds the bipartite capacity fixed × free.
	ErrTooManyEdges = errors.New("edge count exceeds bipartite capacity")
)

// Capacity returns the maximum number of distinct fixed-free edges a graph
// with the given layer sizes can hold, clamped to math.MaxInt when the
// product overflows. The clamp keeps the feasibility check in [Random]
// correct for huge layers: an int edge count can never exceed MaxInt, so an
// overflowing capacity is never a reason to reject.
func Capacity(fixedNodes, freeNodes int) int {
	if fixedNodes <= 0 || freeNodes <= 0 {
		return 0
	}
	if fixedNodes > math.MaxInt/freeNodes {
		return math.MaxInt
	}
	return fixedNodes * freeNodes
}

// Random builds a graph with the given layer sizes and exactly edges
// distinct fixed-free edges, sampled uniformly by rejection: endpoints are
// drawn until an edge is new. Returns ErrNegativeCount for negative
// parameters and ErrTooManyEdges when edges exceeds [Capacity].
//
// The rejection loop terminates with probability 1 once the feasibility
// check passes, but dense requests (edges close to capacity) draw many
// duplicates before completing.
func Random(rng *rand.Rand, fixedNodes, freeNodes, edges int) (*bigraph.Graph, error) {
	if fixedNodes < 0 || freeNodes < 0 || edges < 0 {
		return nil, fmt.Errorf("%w: fixed=%d free=%d edges=%d", ErrNegativeCount, fixedNodes, freeNodes, edges)
	}
	if capacity := Capacity(fixedNodes, freeNodes); edges > capacity {
		return nil, fmt.Errorf("%w: requested %d, capacity %dx%d = %d", ErrTooManyEdges, edges, fixedNodes, freeNodes, capacity)
	}

	g := bigraph.New(fixedNodes, freeNodes)
	for inserted := 0; inserted < edges; {
		u := rng.IntN(fixedNodes)
		v := fixedNodes + rng.IntN(freeNodes)

		// Endpoints are in range by construction.
		added, _ := g.AddEdge(u, v)
		if added {
			inserted++
		}
	}
	return g, nil
}

// Ladder builds a graph with fixedNodes nodes in each layer that admits a
// crossing-free drawing, and returns the witness ordering that realizes it.
//
// A random permutation p of the free layer is drawn; fixed node i connects
// to p[i] and p[i+1], and the last fixed node additionally to the last slot
// of p. Consecutive fixed nodes thus share neighbors from consecutive
// permutation slots, so drawing the free layer in the order p yields zero
// crossings. The witness is p itself - the graph's default ascending
// ordering generally does cross.
//
// fixedNodes == 0 yields an empty graph and an empty witness.
func Ladder(rng *rand.Rand, fixedNodes int) (*bigraph.Graph, []int, error) {
	if fixedNodes < 0 {
		return nil, nil, fmt.Errorf("%w: fixed=%d", ErrNegativeCount, fixedNodes)
	}

	g := bigraph.New(fixedNodes, fixedNodes)
	witness := make([]int, fixedNodes)
	for i, p := range rng.Perm(fixedNodes) {
		witness[i] = fixedNodes + p
	}

	// Endpoints below are in range by construction.
	for i := 0; i+1 < fixedNodes; i++ {
		_, _ = g.AddEdge(witness[i], i)
		_, _ = g.AddEdge(witness[i+1], i)
	}
	if fixedNodes > 0 {
		_, _ = g.AddEdge(witness[fixedNodes-1], fixedNodes-1)
	}

	return g, witness, nil
}
