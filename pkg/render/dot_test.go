package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

func TestToDOT(t *testing.T) {
	g := bigraph.New(2, 2)
	_, _ = g.AddEdge(0, 3)
	_, _ = g.AddEdge(1, 2)

	dot, err := ToDOT(g, nil)
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	for _, want := range []string{
		"graph G {",
		`"a1" [fillcolor=lightblue];`,
		`"b2" [fillcolor=white];`,
		`"a1" -- "b2";`,
		`"a2" -- "b1";`,
		`"b1" -- "b2" [style=invis];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTOrdering(t *testing.T) {
	g := bigraph.New(2, 2)
	_, _ = g.AddEdge(0, 3)

	dot, err := ToDOT(g, []int{3, 2})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	if !strings.Contains(dot, `"b2" -- "b1" [style=invis];`) {
		t.Errorf("DOT output does not pin the flipped free order:\n%s", dot)
	}

	if _, err := ToDOT(g, []int{3, 3}); !errors.Is(err, bigraph.ErrInvalidOrdering) {
		t.Errorf("ToDOT with duplicate ordering: error = %v, want ErrInvalidOrdering", err)
	}
}
