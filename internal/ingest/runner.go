package ingest

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Result reports the completion of one background task.
type Result struct {
	Name string
	Err  error
}

// Runner executes detached pipeline tasks with a concurrency bound.
// Completions are published on Results; when nobody is listening they are
// dropped, so the default behavior stays best-effort.
type Runner struct {
	g       *errgroup.Group
	results chan Result
}

// NewRunner creates a runner allowing at most limit concurrent tasks.
func NewRunner(limit int) *Runner {
	if limit <= 0 {
		limit = 4
	}
	g := &errgroup.Group{}
	g.SetLimit(limit)
	return &Runner{
		g:       g,
		results: make(chan Result, limit),
	}
}

// Results exposes task completions for tests and diagnostics.
func (r *Runner) Results() <-chan Result {
	return r.results
}

// Submit schedules fn on the runner. It returns false and drops the task
// when the concurrency limit is already saturated.
func (r *Runner) Submit(ctx context.Context, name string, fn func(context.Context) error) bool {
	ok := r.g.TryGo(func() error {
		err := fn(ctx)
		if err != nil {
			slog.Error("background task failed",
				slog.String("task", name),
				slog.String("error", err.Error()))
		}
		select {
		case r.results <- Result{Name: name, Err: err}:
		default:
		}
		return nil
	})
	if !ok {
		slog.Warn("background task dropped, runner saturated", slog.String("task", name))
	}
	return ok
}

// Wait blocks until every submitted task has finished.
func (r *Runner) Wait() {
	_ = r.g.Wait()
}
