package lowindex

import (
	"errors"
	"testing"
)

func TestCoveringSubgraphAddEdge(t *testing.T) {
	t.Run("creates a new vertex and its mirror edge", func(t *testing.T) {
		g, err := NewCoveringSubgraph(2, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.AddEdge(1, 1, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Degree() != 2 {
			t.Fatalf("expected degree 2, got %d", g.Degree())
		}
		if v, ok := g.Out(1, 1); !ok || v != 2 {
			t.Errorf("Out(1,1) = (%d,%v), want (2,true)", v, ok)
		}
		if v, ok := g.In(2, -1); !ok || v != 1 {
			t.Errorf("In(2,-1) = (%d,%v), want (1,true)", v, ok)
		}
	})

	t.Run("rejects a second assignment of the same slot", func(t *testing.T) {
		g, _ := NewCoveringSubgraph(2, 5)
		_ = g.AddEdge(1, 1, 2)
		if err := g.AddEdge(1, 1, 1); !errors.Is(err, ErrEdgeConflict) {
			t.Fatalf("expected ErrEdgeConflict, got %v", err)
		}
	})

	t.Run("rejects exceeding max degree", func(t *testing.T) {
		g, _ := NewCoveringSubgraph(1, 1)
		if err := g.AddEdge(1, 1, 2); !errors.Is(err, ErrDegreeExceeded) {
			t.Fatalf("expected ErrDegreeExceeded, got %v", err)
		}
	})
}

func TestCoveringSubgraphDualTableConsistency(t *testing.T) {
	// Property 1: for all (u,s,v), out[u][s] = v iff in[v][-s] = u.
	g, _ := NewCoveringSubgraph(2, 4)
	edges := [][3]int{{1, 1, 2}, {2, 1, 3}, {1, 2, 4}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], e[2]); err != nil {
			t.Fatalf("unexpected error adding %v: %v", e, err)
		}
	}
	for v := 1; v <= g.Degree(); v++ {
		for label := -g.Rank(); label <= g.Rank(); label++ {
			if label == 0 {
				continue
			}
			target, ok := g.Out(v, label)
			if !ok {
				continue
			}
			u, ok2 := g.In(target, -label)
			if !ok2 || u != v {
				t.Errorf("Out(%d,%d)=%d but In(%d,%d) = (%d,%v)", v, label, target, target, -label, u, ok2)
			}
		}
	}
}

func TestCoveringSubgraphFirstEmptySlotOrder(t *testing.T) {
	g, _ := NewCoveringSubgraph(2, 3)
	v, label, ok := g.FirstEmptySlot()
	if !ok || v != 1 || label != 1 {
		t.Fatalf("expected (1,1,true), got (%d,%d,%v)", v, label, ok)
	}
	if err := g.AddEdge(1, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A self-loop at vertex 1 on label +1 also fills label -1's mirror
	// slot (out[1][1]=1 implies in[1][-1]=1, the same cell), so the next
	// empty slot is +2, not -1.
	v, label, ok = g.FirstEmptySlot()
	if !ok || v != 1 || label != 2 {
		t.Fatalf("expected (1,2,true) next, got (%d,%d,%v)", v, label, ok)
	}
}

func TestCoveringSubgraphIsCompleteAndPermutationRep(t *testing.T) {
	g, _ := NewCoveringSubgraph(1, 1)
	if g.IsComplete() {
		t.Fatal("fresh degree-1 graph should not be complete before any edge")
	}
	if err := g.AddEdge(1, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsComplete() {
		t.Fatal("expected graph to be complete")
	}
	rep, err := g.PermutationRep()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep) != 1 || len(rep[0]) != 1 || rep[0][0] != 0 {
		t.Errorf("expected [[0]], got %v", rep)
	}
}

func TestCoveringSubgraphPermutationRepRequiresComplete(t *testing.T) {
	g, _ := NewCoveringSubgraph(1, 2)
	if _, err := g.PermutationRep(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("expected ErrNotComplete, got %v", err)
	}
}

func TestCoveringSubgraphCloneIsIndependent(t *testing.T) {
	g, _ := NewCoveringSubgraph(2, 3)
	_ = g.AddEdge(1, 1, 2)
	clone := g.Clone()
	if err := clone.AddEdge(2, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Degree() != 2 {
		t.Errorf("mutating the clone should not affect the original, original degree = %d", g.Degree())
	}
	if clone.Degree() != 3 {
		t.Errorf("expected clone degree 3, got %d", clone.Degree())
	}
}
