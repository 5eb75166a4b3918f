package lowindex

// SimsNode pairs a CoveringSubgraph with the relator-evaluation state: for
// every spun short relator and every vertex, how far that relator has been
// walked starting at that vertex (pos) and which vertex it has reached
// (cur). Evaluation state is stored as flat per-(relator, vertex) arrays
// sized relators x maxDegree so that Clone is a handful of slice copies,
// not a tree walk.
type SimsNode struct {
	Graph     *CoveringSubgraph
	relators  []Word // shared, read-only spun short relators
	maxDegree int
	pos       []int32
	cur       []int32
	done      []bool
}

// NewRootSimsNode builds the degree-1 root node: a single vertex, all
// relator evaluations starting and ending at it.
func NewRootSimsNode(rank, maxDegree int, spunShortRelators []Word) (*SimsNode, error) {
	g, err := NewCoveringSubgraph(rank, maxDegree)
	if err != nil {
		return nil, err
	}
	n := &SimsNode{
		Graph:     g,
		relators:  spunShortRelators,
		maxDegree: maxDegree,
		pos:       make([]int32, len(spunShortRelators)*maxDegree),
		cur:       make([]int32, len(spunShortRelators)*maxDegree),
		done:      make([]bool, len(spunShortRelators)*maxDegree),
	}
	n.initVertex(1)
	return n, nil
}

func (n *SimsNode) slotFor(relator, vertex int) int {
	return relator*n.maxDegree + (vertex - 1)
}

func (n *SimsNode) initVertex(v int) {
	for i := range n.relators {
		idx := n.slotFor(i, v)
		n.pos[idx] = 0
		n.cur[idx] = int32(v)
		n.done[idx] = false
	}
}

// Clone returns an independent deep copy for the copy-extend lifecycle.
func (n *SimsNode) Clone() *SimsNode {
	pos := make([]int32, len(n.pos))
	cur := make([]int32, len(n.cur))
	done := make([]bool, len(n.done))
	copy(pos, n.pos)
	copy(cur, n.cur)
	copy(done, n.done)
	return &SimsNode{
		Graph:     n.Graph.Clone(),
		relators:  n.relators,
		maxDegree: n.maxDegree,
		pos:       pos,
		cur:       cur,
		done:      done,
	}
}

// CloneInto overwrites dst (which must have been built for the same rank,
// maxDegree, and relator set) with a copy of n, without allocating. See
// CoveringSubgraph.CloneInto.
func (n *SimsNode) CloneInto(dst *SimsNode) {
	n.Graph.CloneInto(dst.Graph)
	copy(dst.pos, n.pos)
	copy(dst.cur, n.cur)
	copy(dst.done, n.done)
	dst.relators = n.relators
}

// IsComplete reports whether the underlying covering graph has no empty
// slots left.
func (n *SimsNode) IsComplete() bool { return n.Graph.IsComplete() }

// AddEdge extends the node by one edge: it assigns the edge on the
// underlying graph, initializes evaluation state for a freshly created
// vertex, and runs the incremental relator-advance step (§4.2). Any
// returned error is a pruning signal (ErrEdgeConflict, ErrDegreeExceeded,
// or ErrRelatorViolation): the caller should discard this node.
func (n *SimsNode) AddEdge(label, from, to int) error {
	wasNewVertex := to == n.Graph.Degree()+1
	if err := n.Graph.AddEdge(label, from, to); err != nil {
		return err
	}
	if wasNewVertex {
		n.initVertex(to)
	}
	return n.advanceRelators(label, from, to)
}

// advanceRelators implements §4.2's RelatorCheck: for every still-unfinished
// (relator, basepoint) pair, if the edge just added matches the next
// pending letter, advance, then keep advancing through already-known edges
// until either the relator finishes or the next required edge is absent.
func (n *SimsNode) advanceRelators(label, from, to int) error {
	degree := n.Graph.Degree()
	for i, w := range n.relators {
		length := int32(len(w))
		for v := 1; v <= degree; v++ {
			idx := n.slotFor(i, v)
			if n.done[idx] {
				continue
			}
			pos, cur := n.pos[idx], n.cur[idx]
			if pos >= length {
				continue
			}
			letter := w[pos]
			switch {
			case letter == int32(label) && cur == int32(from):
				cur = int32(to)
				pos++
			case letter == -int32(label) && cur == int32(to):
				cur = int32(from)
				pos++
			default:
				continue
			}
			for pos < length {
				next, ok := n.Graph.at(int(cur), int(w[pos]))
				if !ok {
					break
				}
				cur = int32(next)
				pos++
			}
			n.pos[idx], n.cur[idx] = pos, cur
			if pos == length {
				if cur == int32(v) {
					n.done[idx] = true
				} else {
					return ErrRelatorViolation
				}
			}
		}
	}
	return nil
}

// unfinishedShortRelators returns the spun short relators whose evaluation
// never closed at some basepoint, for the completion-time closure check.
func (n *SimsNode) unfinishedShortRelators() []Word {
	degree := n.Graph.Degree()
	var out []Word
	for i, w := range n.relators {
		finished := true
		for v := 1; v <= degree; v++ {
			if !n.done[n.slotFor(i, v)] {
				finished = false
				break
			}
		}
		if !finished {
			out = append(out, w)
		}
	}
	return out
}

// checkClosure walks every relator in relators from every basepoint on a
// complete graph, failing with ErrRelatorViolation if any does not return
// to its basepoint. It is used both for long relators (always) and for any
// short relator that never got marked satisfied during the incremental
// walk.
func checkClosure(g *CoveringSubgraph, relators []Word) error {
	degree := g.Degree()
	for _, w := range relators {
		for b := 1; b <= degree; b++ {
			cur := b
			for _, letter := range w {
				next, ok := g.at(cur, int(letter))
				if !ok {
					return ErrRelatorViolation
				}
				cur = next
			}
			if cur != b {
				return ErrRelatorViolation
			}
		}
	}
	return nil
}

// checkComplete runs the full completion check of §4.2/§4.7: unfinished
// short relators plus every long relator, at every basepoint.
func (n *SimsNode) checkComplete(longRelators []Word) error {
	if err := checkClosure(n.Graph, n.unfinishedShortRelators()); err != nil {
		return err
	}
	return checkClosure(n.Graph, longRelators)
}
