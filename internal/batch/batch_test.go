package batch

import (
	"context"
	"fmt"
	"testing"
)

func TestRunPreservesJobOrder(t *testing.T) {
	jobs := make([]Job, 5)
	for i := range jobs {
		i := i
		jobs[i] = Job{
			Name: fmt.Sprintf("job-%d", i),
			Solve: func(ctx context.Context) (Solution, error) {
				return Solution{"i": fmt.Sprintf("%d", i)}, nil
			},
		}
	}

	results, stats := Run(context.Background(), 2, jobs)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		want := fmt.Sprintf("job-%d", i)
		if r.Name != want {
			t.Fatalf("results[%d].Name = %q, want %q (order not preserved)", i, r.Name, want)
		}
		if r.Err != nil {
			t.Fatalf("results[%d].Err = %v, want nil", i, r.Err)
		}
	}
	if stats.TasksCompleted != int64(len(jobs)) {
		t.Fatalf("stats.TasksCompleted = %d, want %d", stats.TasksCompleted, len(jobs))
	}
}

func TestRunCollectsPerJobErrors(t *testing.T) {
	jobs := []Job{
		{Name: "ok", Solve: func(ctx context.Context) (Solution, error) { return Solution{"x": "1"}, nil }},
		{Name: "bad", Solve: func(ctx context.Context) (Solution, error) { return nil, fmt.Errorf("no solution") }},
	}

	results, _ := Run(context.Background(), 0, jobs)
	if results[0].Err != nil {
		t.Fatalf("results[0].Err = %v, want nil", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatalf("results[1].Err = nil, want an error")
	}
}
