package lowindex

import "errors"

// Internal pruning signals. These never escape the search: SimsTree and
// SimsNode consume them to discard a branch and keep going. They are
// exported only so that tests and callers of the helper exposures in §6 of
// the design (CoveringSubgraph.AddEdge) can distinguish the failure mode
// with errors.Is; VerifiedAddEdge reports only success or failure.
var (
	// ErrEdgeConflict means the requested (vertex, slot) or its mirror is
	// already assigned to a different vertex.
	ErrEdgeConflict = errors.New("lowindex: edge conflict")

	// ErrDegreeExceeded means completing the edge would create a vertex
	// beyond the covering graph's fixed capacity.
	ErrDegreeExceeded = errors.New("lowindex: degree exceeded")

	// ErrRelatorViolation means a relator, walked from some basepoint,
	// does not return to that basepoint: the node does not represent a
	// subgroup at all and the whole branch is discarded.
	ErrRelatorViolation = errors.New("lowindex: relator violation")

	// ErrNotCanonical means a cheaper basepoint relabeling produces a
	// lexicographically smaller edge sequence: this branch is a
	// duplicate, up to conjugacy, of one that will be (or was) reached
	// from that other basepoint.
	ErrNotCanonical = errors.New("lowindex: not canonical")
)

// External argument errors: these are the only errors PermutationReps and
// the CoveringSubgraph constructors return to callers.
var (
	ErrInvalidRank     = errors.New("lowindex: rank must be >= 1")
	ErrInvalidDegree   = errors.New("lowindex: max_degree must be >= 1")
	ErrInvalidLetter   = errors.New("lowindex: letter out of range for rank")
	ErrEmptyRelator    = errors.New("lowindex: relator is empty after reduction")
	ErrInvalidThreads  = errors.New("lowindex: num_threads must be >= 0")
	ErrRelatorTooLong  = errors.New("lowindex: relator exceeds spin safety cap")
	ErrNotComplete     = errors.New("lowindex: covering graph is not complete")
	ErrUnsupportedWord = errors.New("lowindex: relator must be a string, Word, []int32 or []int")
)
