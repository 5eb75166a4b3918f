// Package lowindex enumerates, up to conjugacy, the transitive permutation
// representations of a finitely presented group of bounded degree.
//
// Equivalently, it lists every subgroup H of a group G = <x1,...,xr |
// w1,...,wk> with index at most some bound N, one representative per
// conjugacy class, via the Schreier-coset-graph / Sims low-index-subgroups
// algorithm: a depth-first search over partial covering graphs of the
// r-generator bouquet, pruned by relator satisfaction, canonical-form
// (anti-symmetry) checks, and a work-splitting parallel scheduler.
//
// The search itself (CoveringSubgraph, SimsNode, SimsTree) is a pure,
// allocation-conscious CPU loop with no I/O and no suspension points; the
// public entry point is PermutationReps.
package lowindex
