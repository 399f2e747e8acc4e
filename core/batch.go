package core

import (
	"context"
	"sync"

	"github.com/huangsam/hpps/schema"
)

// batchItem pairs a scoring outcome with its input position so batch output
// stays deterministic regardless of worker scheduling.
type batchItem struct {
	index   int
	result  *schema.Result
	failure *schema.BatchFailure
}

// ScoreBatch scores many candidates concurrently with a bounded worker pool.
// Each candidate gets its own diagnostics sink, so invocations share no
// mutable state. A candidate that fails validation becomes a BatchFailure;
// the rest of the batch is unaffected.
func ScoreBatch(ctx context.Context, candidates []schema.CandidateMetrics, p *schema.EngineParams, workers int) schema.BatchOutput {
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan int, len(candidates))
	itemCh := make(chan batchItem, len(candidates))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for i := range jobCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				m := candidates[i]
				result, err := ComputeHPPS(&m, p, NewDiagnostics())
				if err != nil {
					itemCh <- batchItem{index: i, failure: &schema.BatchFailure{Candidate: m.Candidate, Err: err.Error()}}
					continue
				}
				itemCh <- batchItem{index: i, result: result}
			}
		})
	}

	for i := range candidates {
		jobCh <- i
	}
	close(jobCh)

	wg.Wait()
	close(itemCh)

	// Re-order by input position before splitting results and failures.
	items := make([]*batchItem, len(candidates))
	for item := range itemCh {
		it := item
		items[it.index] = &it
	}

	var out schema.BatchOutput
	for _, it := range items {
		if it == nil {
			continue // canceled before this candidate was scored
		}
		if it.failure != nil {
			out.Failures = append(out.Failures, *it.failure)
			continue
		}
		out.Results = append(out.Results, *it.result)
	}
	return out
}
