package bigraph

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// buildGraph creates a graph and inserts the given fixed-free edges.
func buildGraph(t *testing.T, fixed, free int, edges [][2]int) *Graph {
	t.Helper()
	g := New(fixed, free)
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestCountCrossings(t *testing.T) {
	tests := []struct {
		name        string
		fixed, free int
		edges       [][2]int
		want        int
	}{
		{name: "Empty", fixed: 0, free: 0, want: 0},
		{name: "NoEdges", fixed: 3, free: 3, want: 0},
		{
			name:  "ParallelEdges",
			fixed: 2, free: 2,
			edges: [][2]int{{0, 2}, {1, 3}},
			want:  0,
		},
		{
			name:  "SingleCrossing",
			fixed: 2, free: 2,
			edges: [][2]int{{0, 3}, {1, 2}},
			want:  1,
		},
		{
			// Complete bipartite K2,2: exactly one of the four neighbor
			// pairs crosses under the ascending ordering.
			name:  "CompleteK22",
			fixed: 2, free: 2,
			edges: [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}},
			want:  1,
		},
		{
			// K3,3 drawn with both layers ascending has C(3,2)² = 9 crossings.
			name:  "CompleteK33",
			fixed: 3, free: 3,
			edges: [][2]int{
				{0, 3}, {0, 4}, {0, 5},
				{1, 3}, {1, 4}, {1, 5},
				{2, 3}, {2, 4}, {2, 5},
			},
			want: 9,
		},
		{
			name:  "SharedFreeNode",
			fixed: 3, free: 1,
			edges: [][2]int{{0, 3}, {1, 3}, {2, 3}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.fixed, tt.free, tt.edges)

			if got := g.CountCrossings(); got != tt.want {
				t.Errorf("CountCrossings = %d, want %d", got, tt.want)
			}

			// The explicit counter with the ascending ordering must agree.
			got, err := g.CountCrossingsOrdered(g.DefaultOrdering())
			if err != nil {
				t.Fatalf("CountCrossingsOrdered(default): %v", err)
			}
			if got != tt.want {
				t.Errorf("CountCrossingsOrdered(default) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountCrossingsOrdered(t *testing.T) {
	// Two edges that cross by default and untangle when the free layer flips.
	g := buildGraph(t, 2, 2, [][2]int{{0, 3}, {1, 2}})

	got, err := g.CountCrossingsOrdered([]int{3, 2})
	if err != nil {
		t.Fatalf("CountCrossingsOrdered: %v", err)
	}
	if got != 0 {
		t.Errorf("CountCrossingsOrdered([3 2]) = %d, want 0", got)
	}

	// And the reverse: parallel edges cross once the layer is flipped.
	g = buildGraph(t, 2, 2, [][2]int{{0, 2}, {1, 3}})
	got, err = g.CountCrossingsOrdered([]int{3, 2})
	if err != nil {
		t.Fatalf("CountCrossingsOrdered: %v", err)
	}
	if got != 1 {
		t.Errorf("CountCrossingsOrdered([3 2]) = %d, want 1", got)
	}
}

func TestCountCrossingsOrderedValidation(t *testing.T) {
	g := buildGraph(t, 2, 3, [][2]int{{0, 2}, {1, 3}})

	tests := []struct {
		name     string
		ordering []int
	}{
		{name: "TooShort", ordering: []int{2, 3}},
		{name: "TooLong", ordering: []int{2, 3, 4, 4}},
		{name: "Duplicate", ordering: []int{2, 3, 3}},
		{name: "FixedIndex", ordering: []int{1, 2, 3}},
		{name: "OutOfRange", ordering: []int{2, 3, 5}},
		{name: "Nil", ordering: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.CountCrossingsOrdered(tt.ordering); !errors.Is(err, ErrInvalidOrdering) {
				t.Errorf("CountCrossingsOrdered(%v) error = %v, want ErrInvalidOrdering", tt.ordering, err)
			}
			if _, err := g.CountCrossingsFast(tt.ordering); !errors.Is(err, ErrInvalidOrdering) {
				t.Errorf("CountCrossingsFast(%v) error = %v, want ErrInvalidOrdering", tt.ordering, err)
			}
			if err := g.CheckOrdering(tt.ordering); !errors.Is(err, ErrInvalidOrdering) {
				t.Errorf("CheckOrdering(%v) = %v, want ErrInvalidOrdering", tt.ordering, err)
			}
		})
	}

	if err := g.CheckOrdering([]int{4, 2, 3}); err != nil {
		t.Errorf("CheckOrdering(valid) = %v, want nil", err)
	}
}

// TestCountCrossingsFastAgreement checks the Fenwick-tree counter against
// the pairwise definition on randomized instances and orderings.
func TestCountCrossingsFastAgreement(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		fixed := 1 + rng.IntN(8)
		free := 1 + rng.IntN(8)
		g := New(fixed, free)

		edges := rng.IntN(fixed*free + 1)
		for i := 0; i < edges; i++ {
			// Duplicates are fine - AddEdge ignores them.
			if _, err := g.AddEdge(rng.IntN(fixed), fixed+rng.IntN(free)); err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
		}

		ordering := make([]int, free)
		for i, p := range rng.Perm(free) {
			ordering[i] = fixed + p
		}

		want, err := g.CountCrossingsOrdered(ordering)
		if err != nil {
			t.Fatalf("CountCrossingsOrdered: %v", err)
		}
		got, err := g.CountCrossingsFast(ordering)
		if err != nil {
			t.Fatalf("CountCrossingsFast: %v", err)
		}
		if got != want {
			t.Errorf("trial %d (%d×%d, %d edges): fast = %d, pairwise = %d",
				trial, fixed, free, g.EdgeCount(), got, want)
		}
	}
}
