package lowindex

import "fmt"

const spinSafetyFactor = 2

// maxSpunLength is the safety cap of design note "spun relator safety":
// the spinner must not bother producing rotations that could never be
// fully evaluated within max_degree vertices.
func maxSpunLength(maxDegree, rank int) int {
	return spinSafetyFactor * maxDegree * rank
}

// Spin produces, for each cyclically reduced word in words, all of its
// cyclic rotations (the "spun" relator set used for short-relator
// pruning). rank is inferred from the largest generator magnitude present
// across words, matching the two-argument helper exposure of §6; callers
// that already know rank should prefer spinWithRank to avoid re-deriving
// it from possibly-short input.
func Spin(words []Word, maxDegree int) ([]Word, error) {
	rank := 1
	for _, w := range words {
		for _, g := range w {
			if a := int(abs32(g)); a > rank {
				rank = a
			}
		}
	}
	return spinWithRank(words, maxDegree, rank)
}

func spinWithRank(words []Word, maxDegree, rank int) ([]Word, error) {
	cap := maxSpunLength(maxDegree, rank)
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if len(w) == 0 {
			return nil, ErrEmptyRelator
		}
		if len(w) > cap {
			return nil, fmt.Errorf("%w: relator length %d exceeds safety cap %d (max_degree=%d, rank=%d)",
				ErrRelatorTooLong, len(w), cap, maxDegree, rank)
		}
		for i := 0; i < len(w); i++ {
			out = append(out, w.Rotate(i))
		}
	}
	return out, nil
}
