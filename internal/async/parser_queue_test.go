package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jobsarthi/notification-parser/constants"
	"github.com/jobsarthi/notification-parser/internal/pipeline"
)

type countingRunner struct {
	mu   sync.Mutex
	jobs []string
}

func (r *countingRunner) Run(_ context.Context, in pipeline.Input) pipeline.Outcome {
	r.mu.Lock()
	r.jobs = append(r.jobs, in.JobID)
	r.mu.Unlock()
	return pipeline.Outcome{Status: constants.RunStatusSuccess}
}

func (r *countingRunner) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.jobs...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueRunsEveryEnqueuedJob(t *testing.T) {
	runner := &countingRunner{}
	q := NewParserQueue(runner, quietLogger(), WithWorkers(2), WithQueueSize(16))

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if err := q.Enqueue(context.Background(), Job{Input: pipeline.Input{JobID: id}, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue(%s): %v", id, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := runner.seen(); len(got) != 5 {
		t.Errorf("jobs run = %v, want all 5", got)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	runner := &countingRunner{}
	q := NewParserQueue(runner, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	// A second shutdown is a no-op.
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{Input: pipeline.Input{JobID: "late"}})
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after shutdown = %v, want ErrQueueClosed", err)
	}
	if got := runner.seen(); len(got) != 0 {
		t.Errorf("late job must not run, ran %v", got)
	}
}
