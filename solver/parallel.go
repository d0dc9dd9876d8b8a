package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cardfelt/chipsplit/chips"
)

// assignmentBatchSize is how many value assignments a worker pulls per job.
// Chunks cost roughly the same (bounded enumeration with similar pruning),
// so static batching is enough; no work stealing.
const assignmentBatchSize = 64

// searchAssignments partitions the assignment space across workers. A
// producer goroutine streams batches of assignments into a channel; each
// worker runs the full allocation search per assignment and keeps a local
// best. Workers share nothing mutable, and the reduction reuses the scoring
// chain, so the winner is invariant to how the work was chunked.
func (s *Solver) searchAssignments(ctx context.Context, catalog chips.Catalog, sc *scorer, stock []int) (*candidate, error) {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan [][]chips.Cents, s.threads*2)
	bests := make([]*candidate, s.threads)

	for t := 0; t < s.threads; t++ {
		t := t
		g.Go(func() error {
			var best *candidate
			for batch := range jobs {
				for _, values := range batch {
					a := newAllocator(sc, stock, s.players, values)
					best = a.search(best)
					s.nodes.Add(a.nodes)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			bests[t] = best
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		canceled := false
		batch := make([][]chips.Cents, 0, assignmentBatchSize)
		enumerateAssignments(catalog, sc.numColors, func(values []chips.Cents) bool {
			batch = append(batch, values)
			if len(batch) < assignmentBatchSize {
				return true
			}
			select {
			case jobs <- batch:
				batch = make([][]chips.Cents, 0, assignmentBatchSize)
				return true
			case <-ctx.Done():
				canceled = true
				return false
			}
		})
		if canceled {
			return ctx.Err()
		}
		if len(batch) > 0 {
			select {
			case jobs <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	var best *candidate
	for _, b := range bests {
		if sc.better(b, best) {
			best = b
		}
	}
	return best, nil
}

// searchAllocations partitions a fixed-assignment search by the first
// color's per-player count: each job pins counts[0] and the worker
// enumerates the remaining colors.
func (s *Solver) searchAllocations(ctx context.Context, sc *scorer, stock []int, values []chips.Cents) (*candidate, error) {
	if sc.target == 0 {
		// Maximize-usage mode is a single bounded evaluation.
		a := newAllocator(sc, stock, s.players, values)
		best := a.search(nil)
		s.nodes.Add(a.nodes)
		return best, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int, s.threads*2)
	bests := make([]*candidate, s.threads)

	for t := 0; t < s.threads; t++ {
		t := t
		g.Go(func() error {
			a := newAllocator(sc, stock, s.players, values)
			var best *candidate
			for first := range jobs {
				best = a.searchFrom(first, best)
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			s.nodes.Add(a.nodes)
			bests[t] = best
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		bound := newAllocator(sc, stock, s.players, values).maxPer[0]
		for n := 0; n <= bound; n++ {
			select {
			case jobs <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	var best *candidate
	for _, b := range bests {
		if sc.better(b, best) {
			best = b
		}
	}
	return best, nil
}
