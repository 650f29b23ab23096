package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jobsarthi/notification-parser/constants"
)

type ParserQueue struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ParserQueue)

func WithWorkers(n int) Option {
	return func(q *ParserQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ParserQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(q *ParserQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewParserQueue(runner Runner, logger *slog.Logger, opts ...Option) *ParserQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ParserQueue{
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ParserQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					out := q.runner.Run(ctx, job.Input)
					cancel()

					switch out.Status {
					case constants.RunStatusSuccess:
						q.logger.Info("run completed",
							"worker_id", workerID, "job_id", job.Input.JobID, "run_id", out.Run.RunID)
					default:
						q.logger.Warn("run did not succeed",
							"worker_id", workerID, "job_id", job.Input.JobID,
							"run_id", out.Run.RunID, "status", string(out.Status),
							"error", out.Run.ErrorMessage)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ParserQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.Input.JobID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued notification for parsing", "job_id", job.Input.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.Input.JobID)
		q.ch <- job
	}
	return nil
}

func (q *ParserQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
