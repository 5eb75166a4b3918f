package lowindex

import (
	"context"

	"github.com/unhyperbolic/low-index/internal/parallel"
)

// defaultBloomFactor is K from "K*T, K ~= 50" in §4.6.
const defaultBloomFactor = 50

// Scheduler implements the contract of §4.6: below two workers it runs a
// single uninterrupted DFS; otherwise it blooms a frontier, statically
// partitions it across a fixed worker pool, and reassembles results in a
// deterministic order (frontier index, then DFS-emission order within a
// subtree).
type Scheduler struct {
	Tree *SimsTree

	// NumWorkers is the already-resolved (non-zero) worker count; the
	// Facade is responsible for turning num_threads == 0 into
	// HardwareConcurrency() before constructing a Scheduler.
	NumWorkers int

	// BloomFactor overrides K (default 50); see SPEC_FULL §4 on exposing
	// this for small problems, the way the original's multi.py calls
	// tree.bloom(6) ad hoc for an 8-worker pool.
	BloomFactor int
}

func (s *Scheduler) bloomFactor() int {
	if s.BloomFactor > 0 {
		return s.BloomFactor
	}
	return defaultBloomFactor
}

func (s *Scheduler) workers() int {
	if s.NumWorkers > 0 {
		return s.NumWorkers
	}
	return 1
}

// Run produces the full, order-deterministic list of complete nodes for
// this scheduler's tree.
func (s *Scheduler) Run(ctx context.Context) ([]*SimsNode, error) {
	workers := s.workers()
	if workers <= 1 {
		root, err := s.Tree.Root()
		if err != nil {
			return nil, err
		}
		return s.Tree.Search(root)
	}

	target := s.bloomFactor() * workers
	if target < 1 {
		target = 1
	}
	frontier, complete, err := s.Tree.Bloom(target)
	if err != nil {
		return nil, err
	}
	if len(frontier) == 0 {
		return complete, nil
	}

	results := make([][]*SimsNode, len(frontier))
	pool := parallel.NewStaticPool(workers)
	err = pool.RunPartitioned(ctx, len(frontier), func(ctx context.Context, i int) error {
		res, err := s.Tree.Search(frontier[i])
		if err != nil {
			return err
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*SimsNode, 0, len(complete)+len(frontier))
	out = append(out, complete...)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
