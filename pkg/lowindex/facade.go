package lowindex

import (
	"context"
	"fmt"
)

// Relator is anything PermutationReps accepts as a single relator: a
// parsed Word, a raw []int32/[]int signed-letter sequence, or an ASCII
// string in the a..z/A..Z convention of §6. The string/Word overload is
// the one convenience original_source's cpp_low_index wrapper offers
// (auto-parsing strings); it is not the auto short/long splitting facade
// the spec's Open Question rules out of the core contract.
type Relator = any

func toWord(rank int, r Relator) (Word, error) {
	switch v := r.(type) {
	case string:
		return ParseWord(rank, v)
	case Word:
		return v.FreelyReduce().CyclicallyReduce(), nil
	case []int32:
		return Word(v).FreelyReduce().CyclicallyReduce(), nil
	case []int:
		w := make(Word, len(v))
		for i, g := range v {
			w[i] = int32(g)
		}
		return w.FreelyReduce().CyclicallyReduce(), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedWord, r)
	}
}

func toWords(rank int, relators []Relator) ([]Word, error) {
	out := make([]Word, 0, len(relators))
	for i, r := range relators {
		w, err := toWord(rank, r)
		if err != nil {
			return nil, fmt.Errorf("relator %d: %w", i, err)
		}
		if len(w) == 0 {
			return nil, fmt.Errorf("relator %d: %w", i, ErrEmptyRelator)
		}
		out = append(out, w)
	}
	return out, nil
}

// PermutationReps is the primary entry point of §6: it enumerates, up to
// conjugacy, every transitive permutation representation of
// <x1,...,xrank | shortRelators, longRelators> of degree at most maxDegree,
// using numThreads worker threads (0 meaning "all hardware threads").
//
// shortRelators are spun and checked incrementally during the search;
// longRelators are checked only once a candidate graph is complete. The
// trivial representation [[0],[0],...] is always included, via the
// degree-1 root node.
func PermutationReps(ctx context.Context, rank int, shortRelators, longRelators []Relator, maxDegree, numThreads int) ([][][]int, error) {
	if rank < 1 {
		return nil, ErrInvalidRank
	}
	if maxDegree < 1 {
		return nil, ErrInvalidDegree
	}
	if numThreads < 0 {
		return nil, ErrInvalidThreads
	}

	shortWords, err := toWords(rank, shortRelators)
	if err != nil {
		return nil, err
	}
	longWords, err := toWords(rank, longRelators)
	if err != nil {
		return nil, err
	}

	spunShort, err := spinWithRank(shortWords, maxDegree, rank)
	if err != nil {
		return nil, err
	}

	tree, err := NewSimsTree(rank, maxDegree, spunShort, longWords)
	if err != nil {
		return nil, err
	}

	threads := numThreads
	if threads == 0 {
		threads = HardwareConcurrency()
	}
	sched := &Scheduler{Tree: tree, NumWorkers: threads}

	nodes, err := sched.Run(ctx)
	if err != nil {
		return nil, err
	}

	reps := make([][][]int, 0, len(nodes))
	for _, n := range nodes {
		rep, err := n.Graph.PermutationRep()
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}
