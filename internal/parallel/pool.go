// Package parallel provides the fixed-size worker pool the Scheduler uses
// to run independent subtree searches. Unlike the teacher's original
// internal/parallel package — which also offered dynamic scaling,
// work-stealing, rate limiting, and backpressure control for long-lived,
// I/O-suspending goal evaluation — the low-index search has no suspension
// points and its subtrees are statically partitioned once after bloom, by
// design (no rebalancing between workers). Only the StaticWorkerPool shape
// survives here, adapted to run indexed partitions and report the first
// error via golang.org/x/sync/errgroup rather than a hand-rolled
// WaitGroup + sync.Once cancellation.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// StaticPool is a fixed-size worker pool: it never grows, shrinks, or
// steals work between workers once a run starts.
type StaticPool struct {
	workers int
}

// NewStaticPool returns a pool sized to workers, or runtime.NumCPU() if
// workers <= 0.
func NewStaticPool(workers int) *StaticPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &StaticPool{workers: workers}
}

// Workers reports the fixed worker count.
func (p *StaticPool) Workers() int { return p.workers }

// RunPartitioned statically splits [0, n) into contiguous, per-worker
// chunks of roughly n/Workers() items each and runs fn once per index,
// each chunk on its own worker goroutine. It is the direct analogue of the
// Scheduler's "partition F among T workers; each runs DFS on its assigned
// subset" contract: no index is ever picked up by more than one worker,
// and workers never reach into another worker's chunk.
//
// The first error returned by fn cancels ctx for the remaining workers and
// is returned once every worker has stopped; other workers' in-flight
// indices still complete, honoring the "pruning inside a worker does not
// terminate the search" rule — only a genuine fn error does.
func (p *StaticPool) RunPartitioned(ctx context.Context, n int, fn func(ctx context.Context, idx int) error) error {
	if n == 0 {
		return nil
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for idx := start; idx < end; idx++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := fn(gctx, idx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
