package lowindex

// buildGraphFromRep reconstructs a complete CoveringSubgraph directly from
// a permutation representation, for property tests that need to run
// internal graph-shaped checks (e.g. checkCanonical) against an already
// emitted result without threading the original search state through.
func buildGraphFromRep(rank int, rep [][]int) *CoveringSubgraph {
	degree := len(rep[0])
	g := &CoveringSubgraph{rank: rank, maxDegree: degree, degree: degree, edge: make([]int32, degree*2*rank)}
	for gi := 0; gi < rank; gi++ {
		for v := 0; v < degree; v++ {
			target := rep[gi][v] + 1 // back to 1-indexed
			label := gi + 1
			g.edge[g.cellIndex(v+1, slotIndex(label))] = int32(target)
			g.edge[g.cellIndex(target, slotIndex(-label))] = int32(v + 1)
		}
	}
	return g
}

// isBijection reports whether perm is a permutation of [0, len(perm)).
func isBijection(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, v := range perm {
		if v < 0 || v >= len(perm) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// relatorSatisfied reports whether walking w (a signed-letter Word) from every
// basepoint of the permutation representation rep returns to that
// basepoint, i.e. whether rep satisfies w as a relator.
func relatorSatisfied(rep [][]int, w Word) bool {
	degree := len(rep[0])
	for b := 0; b < degree; b++ {
		cur := b
		for _, letter := range w {
			g := int(abs32(letter))
			perm := rep[g-1]
			if letter > 0 {
				cur = perm[cur]
			} else {
				cur = inverseAt(perm, cur)
			}
		}
		if cur != b {
			return false
		}
	}
	return true
}

func inverseAt(perm []int, v int) int {
	for i, p := range perm {
		if p == v {
			return i
		}
	}
	return -1
}
