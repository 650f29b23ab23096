// Package async runs parsing jobs on a bounded worker pool. Runs are
// independent, so the pool needs no coordination beyond the channel.
package async

import (
	"context"
	"errors"
	"time"

	"github.com/jobsarthi/notification-parser/internal/pipeline"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has begun; the job
// was not accepted and will not run.
var ErrQueueClosed = errors.New("queue is shut down")

// Job is one queued notification. Extend as needed later (priority, trace,
// dedupe).
type Job struct {
	Input       pipeline.Input
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner is what the workers execute; satisfied by *pipeline.Controller.
type Runner interface {
	Run(ctx context.Context, in pipeline.Input) pipeline.Outcome
}
