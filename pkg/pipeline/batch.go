package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/shapealign/pkg/observability"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// Job is one slide of a batch. Directive selects an ordered arrangement;
// when it is nil the job aligns by Mode instead.
type Job struct {
	Name      string
	Slide     *slide.Slide
	Directive *slide.Directive
	Mode      string
}

// JobResult pairs a job with its outcome. Exactly one of Result and Err is set.
type JobResult struct {
	Job    string
	Result *Result
	Err    error
}

// Batch runs every job with at most opts.Concurrency in flight. Results are
// returned in job order. A failing job does not stop the others; the
// returned error is only set when ctx was cancelled, in which case jobs that
// never started carry the context error.
func (r *Runner) Batch(ctx context.Context, jobs []Job, opts Options) ([]JobResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnBatchStart(ctx, len(jobs), opts.Concurrency)
	opts.Logger.Info("starting batch", "jobs", len(jobs), "concurrency", opts.Concurrency)

	results := make([]JobResult, len(jobs))
	var failed atomic.Int32

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Concurrency)
	for i, job := range jobs {
		results[i].Job = job.Name
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				results[i].Err = err
				failed.Add(1)
				return nil
			}
			res, err := r.runJob(egCtx, job, opts)
			if err != nil {
				opts.Logger.Error("job failed", "job", job.Name, "error", err)
				failed.Add(1)
			}
			results[i].Result, results[i].Err = res, err
			return nil
		})
	}
	_ = eg.Wait()

	duration := time.Since(start)
	hooks.OnBatchComplete(ctx, len(jobs), int(failed.Load()), duration)
	opts.Logger.Info("batch complete", "jobs", len(jobs), "failed", failed.Load(), "duration", duration)

	return results, ctx.Err()
}

func (r *Runner) runJob(ctx context.Context, job Job, opts Options) (*Result, error) {
	if job.Slide == nil {
		return nil, fmt.Errorf("%s: no slide", job.Name)
	}
	logger := opts.Logger.With("job", job.Name)
	opts.Logger = logger
	if job.Directive != nil {
		return r.Arrange(ctx, job.Slide, *job.Directive, opts)
	}
	return r.Align(ctx, job.Slide, job.Mode, opts)
}
