package pipeline

import (
	"context"
	"sync"

	"github.com/jobsarthi/notification-parser/internal/jobextract"
)

// extractAll runs the extract stage over every chunk of the current
// attempt. Any chunk error aborts the attempt wholesale. Results are slotted
// by chunk index so the merger always sees document order, regardless of
// completion order under fan-out.
func (c *Controller) extractAll(ctx context.Context, chunks []string) ([]*jobextract.Result, int, error) {
	if c.cfg.ChunkConcurrency <= 1 || len(chunks) == 1 {
		return c.extractSequential(ctx, chunks)
	}
	return c.extractParallel(ctx, chunks)
}

func (c *Controller) extractSequential(ctx context.Context, chunks []string) ([]*jobextract.Result, int, error) {
	results := make([]*jobextract.Result, 0, len(chunks))
	tokens := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, tokens, &ParseError{Kind: KindCancelled, Message: "run cancelled", Cause: err}
		}
		res, used, err := c.stage.Extract(ctx, chunk, i, len(chunks))
		tokens += used
		if err != nil {
			return nil, tokens, err
		}
		results = append(results, res)
	}
	return results, tokens, nil
}

// extractParallel fans chunk extraction out under a bounded semaphore and
// joins before returning. On the first error the shared context is
// cancelled so in-flight siblings abandon their calls; their partial output
// is discarded, never merged.
func (c *Controller) extractParallel(ctx context.Context, chunks []string) ([]*jobextract.Result, int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, c.cfg.ChunkConcurrency)
	results := make([]*jobextract.Result, len(chunks))
	tokens := make([]int, len(chunks))

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			res, used, err := c.stage.Extract(ctx, chunk, i, len(chunks))
			tokens[i] = used
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			results[i] = res
		}(i, chunk)
	}
	wg.Wait()

	total := 0
	for _, t := range tokens {
		total += t
	}
	if firstErr != nil {
		return nil, total, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, total, &ParseError{Kind: KindCancelled, Message: "run cancelled", Cause: err}
	}
	for _, r := range results {
		if r == nil {
			return nil, total, &ParseError{Kind: KindCancelled, Message: "chunk abandoned before completion"}
		}
	}
	return results, total, nil
}
