package lowindex

import "fmt"

// CoveringSubgraph is a partial labeled covering graph of the r-generator
// bouquet: each vertex has at most one outgoing edge per signed generator.
// Degree grows monotonically from 1 up to a fixed capacity maxDegree;
// edges, once assigned, are never overwritten.
//
// Spec names two tables, out[v][s] and in[v][s], tied together by the
// invariant out[u][g] = v iff in[v][-g] = u. Realizing that invariant with
// a single add_edge entry point that always writes both directions of one
// arrow collapses the two tables into one physical array addressed by
// (vertex, signed slot): writing out[u][g] = v always also writes
// out[v][-g] = u in the same call, which is exactly what in[v][-g] = u
// means. Out and In below are both thin, differently-named views onto that
// one array, kept for API parity with the two-table contract and so
// property tests can assert the dual-table invariant directly.
type CoveringSubgraph struct {
	rank      int
	maxDegree int
	degree    int
	edge      []int32 // flat, row-major: (vertex-1)*2*rank + slotIndex(label)
}

// NewCoveringSubgraph constructs a graph of the given rank and capacity,
// with a single vertex (degree 1) and no edges assigned.
func NewCoveringSubgraph(rank, maxDegree int) (*CoveringSubgraph, error) {
	if rank < 1 {
		return nil, ErrInvalidRank
	}
	if maxDegree < 1 {
		return nil, ErrInvalidDegree
	}
	return &CoveringSubgraph{
		rank:      rank,
		maxDegree: maxDegree,
		degree:    1,
		edge:      make([]int32, maxDegree*2*rank),
	}, nil
}

func slotIndex(label int) int {
	g := label
	if g > 0 {
		return (g - 1) * 2
	}
	return (-g-1)*2 + 1
}

func slotLabel(slot int) int {
	g := slot/2 + 1
	if slot%2 == 0 {
		return g
	}
	return -g
}

func (c *CoveringSubgraph) cellIndex(v, slot int) int {
	return (v-1)*2*c.rank + slot
}

// Rank returns the number of generators.
func (c *CoveringSubgraph) Rank() int { return c.rank }

// MaxDegree returns the fixed vertex-count capacity.
func (c *CoveringSubgraph) MaxDegree() int { return c.maxDegree }

// Degree returns the current number of vertices.
func (c *CoveringSubgraph) Degree() int { return c.degree }

func (c *CoveringSubgraph) at(v, label int) (int, bool) {
	val := c.edge[c.cellIndex(v, slotIndex(label))]
	return int(val), val != 0
}

// Out returns out[v][label]: the vertex reached from v along label, if any.
func (c *CoveringSubgraph) Out(v, label int) (int, bool) { return c.at(v, label) }

// In returns in[v][label]: the vertex u such that out[u][-label] = v, if
// any. Under the collapsed single-table representation this reads the
// same cell as Out(v, label); see the type doc comment.
func (c *CoveringSubgraph) In(v, label int) (int, bool) { return c.at(v, label) }

// AddEdge assigns out[from][label] = to (and, symmetrically, the mirror
// arrow out[to][-label] = from). to == Degree()+1 creates a new vertex.
// Returns ErrEdgeConflict if either slot is already assigned, or
// ErrDegreeExceeded if a new vertex would exceed MaxDegree.
func (c *CoveringSubgraph) AddEdge(label, from, to int) error {
	if to == c.degree+1 {
		if c.degree >= c.maxDegree {
			return ErrDegreeExceeded
		}
	} else if to < 1 || to > c.degree {
		return fmt.Errorf("%w: target vertex %d out of range [1,%d]", ErrEdgeConflict, to, c.degree)
	}
	if from < 1 || from > c.degree {
		return fmt.Errorf("%w: source vertex %d out of range [1,%d]", ErrEdgeConflict, from, c.degree)
	}
	if _, ok := c.at(from, label); ok {
		return ErrEdgeConflict
	}
	if _, ok := c.at(to, -label); ok {
		return ErrEdgeConflict
	}
	if to == c.degree+1 {
		c.degree++
	}
	c.edge[c.cellIndex(from, slotIndex(label))] = int32(to)
	c.edge[c.cellIndex(to, slotIndex(-label))] = int32(from)
	return nil
}

// VerifiedAddEdge is the bool-returning helper exposure of §6: it reports
// success instead of returning an error.
func (c *CoveringSubgraph) VerifiedAddEdge(label, from, to int) bool {
	return c.AddEdge(label, from, to) == nil
}

// FirstEmptySlot returns the least (vertex, label) pair, in vertex order
// then slot order (+1,-1,+2,-2,...), with no edge assigned, restricted to
// vertices <= Degree(). ok is false if the graph is complete.
func (c *CoveringSubgraph) FirstEmptySlot() (vertex, label int, ok bool) {
	slots := 2 * c.rank
	for v := 1; v <= c.degree; v++ {
		base := (v - 1) * slots
		for s := 0; s < slots; s++ {
			if c.edge[base+s] == 0 {
				return v, slotLabel(s), true
			}
		}
	}
	return 0, 0, false
}

// IsComplete reports whether every slot of every vertex is assigned.
func (c *CoveringSubgraph) IsComplete() bool {
	_, _, ok := c.FirstEmptySlot()
	return !ok
}

// PermutationRep returns, for each generator g in [1, rank], the 0-indexed
// permutation of [0, degree-1] given by v -> out[v][g]-1. Fails with
// ErrNotComplete unless IsComplete().
func (c *CoveringSubgraph) PermutationRep() ([][]int, error) {
	if !c.IsComplete() {
		return nil, ErrNotComplete
	}
	reps := make([][]int, c.rank)
	for g := 1; g <= c.rank; g++ {
		perm := make([]int, c.degree)
		for v := 1; v <= c.degree; v++ {
			target, _ := c.at(v, g)
			perm[v-1] = target - 1
		}
		reps[g-1] = perm
	}
	return reps, nil
}

// Clone returns an independent deep copy, the "copy-extend" lifecycle
// primitive: children in the search own their own graph.
func (c *CoveringSubgraph) Clone() *CoveringSubgraph {
	edge := make([]int32, len(c.edge))
	copy(edge, c.edge)
	return &CoveringSubgraph{rank: c.rank, maxDegree: c.maxDegree, degree: c.degree, edge: edge}
}

// CloneInto overwrites dst (which must share this graph's rank and
// maxDegree, i.e. have an edge buffer of the same length) with a copy of
// c, without allocating. This is the hot-loop counterpart to Clone, used
// by SimsTree's node pool to keep allocation out of the search inner loop
// per the "reuse a single growing buffer rewound on backtrack" design
// note.
func (c *CoveringSubgraph) CloneInto(dst *CoveringSubgraph) {
	dst.rank = c.rank
	dst.maxDegree = c.maxDegree
	dst.degree = c.degree
	copy(dst.edge, c.edge)
}

// bfsSequence walks the graph breadth-first from root, following the same
// fixed slot order as FirstEmptySlot, renumbering vertices in order of
// first discovery (root becomes label 1). It returns the flattened
// sequence of target labels (0 meaning undefined) used by the canonicity
// check, covering every vertex currently in [1, degree].
func (c *CoveringSubgraph) bfsSequence(root int) []int32 {
	slots := 2 * c.rank
	labelOf := make([]int, c.degree+1) // labelOf[oldVertex] = newLabel, 0 = unassigned
	labelOf[root] = 1
	queue := make([]int, 0, c.degree)
	queue = append(queue, root)
	next := 2
	seq := make([]int32, 0, c.degree*slots)
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		base := (v - 1) * slots
		for s := 0; s < slots; s++ {
			target := c.edge[base+s]
			if target == 0 {
				seq = append(seq, 0)
				continue
			}
			tv := int(target)
			if labelOf[tv] == 0 {
				labelOf[tv] = next
				next++
				queue = append(queue, tv)
			}
			seq = append(seq, int32(labelOf[tv]))
		}
	}
	return seq
}
