// Package batch runs a collection of independent finite-domain models
// concurrently, bounded by a worker pool. Each model is solved to its
// first solution entirely on its own goroutine: the concurrency here is
// strictly across models, never inside a single model's own search,
// which stays single-threaded per the solving engine's design.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitrdm/finitedomain/internal/parallel"
)

// Job is one unit of batch work: solve one model and report the result.
// Callers close over their own fd.Model[T] instance in the thunk, since
// batch itself is not generic over the model's value type.
type Job struct {
	// Name identifies the job in Results, e.g. a puzzle file's base name.
	Name string
	// Solve runs the model to its first solution (or reports why it
	// couldn't). It must not retain references to shared mutable state
	// other jobs also touch.
	Solve func(ctx context.Context) (Solution, error)
}

// Solution is a job's rendered result, kept as a flat map so batch does
// not need to know the concrete variable or value types a puzzle uses.
type Solution map[string]string

// Result pairs a Job's name with its outcome.
type Result struct {
	Name     string
	Solution Solution
	Err      error
}

// Run executes every job in jobs, bounded by concurrency simultaneous
// workers (0 meaning one per available CPU), and returns one Result per
// job in the same order jobs were given regardless of completion order.
// Run blocks until every submitted job has finished; it does not return
// early when ctx is cancelled. A job that could not be submitted (for
// example because ctx was already cancelled) gets a Result carrying the
// submission error and is not run.
func Run(ctx context.Context, concurrency int, jobs []Job) ([]Result, *parallel.ExecutionStats) {
	pool := parallel.NewWorkerPool(concurrency)
	defer pool.Shutdown()

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	wg.Add(len(jobs))

	for i, job := range jobs {
		i, job := i, job
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			solution, err := job.Solve(ctx)
			results[i] = Result{Name: job.Name, Solution: solution, Err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Name: job.Name, Err: fmt.Errorf("batch: submitting %q: %w", job.Name, err)}
		}
	}

	wg.Wait()
	return results, pool.GetStats()
}
