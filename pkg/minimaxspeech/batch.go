package minimaxspeech

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultBatchConcurrency bounds SynthesizeBatch when the caller passes a
// non-positive worker count.
const DefaultBatchConcurrency = 5

// BatchResult is the outcome of one request in a SynthesizeBatch call.
// Exactly one of Response and Err is set.
type BatchResult struct {
	Response *T2AResponse
	Err      error
}

type batchConfig struct {
	limiter *rate.Limiter
}

// BatchOption configures SynthesizeBatch.
type BatchOption func(*batchConfig)

// WithBatchRateLimit caps the aggregate request rate across all batch
// workers. Each worker waits for the limiter before dispatching.
func WithBatchRateLimit(limit rate.Limit, burst int) BatchOption {
	return func(c *batchConfig) { c.limiter = rate.NewLimiter(limit, burst) }
}

// SynthesizeBatch synthesizes multiple requests concurrently through a
// bounded worker pool and returns one result per request, in input order.
// A failing request never aborts the others. maxConcurrent <= 0 selects
// DefaultBatchConcurrency; the pool is never unbounded. When ctx is
// canceled, requests not yet dispatched complete with ctx.Err().
func (s *SpeechService) SynthesizeBatch(ctx context.Context, reqs []*T2ARequest, maxConcurrent int, opts ...BatchOption) []BatchResult {
	cfg := &batchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	workers := maxConcurrent
	if workers <= 0 {
		workers = DefaultBatchConcurrency
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	slog.Debug("minimax: synthesize batch", "count", len(reqs), "workers", workers)

	results := make([]BatchResult, len(reqs))

	tasks := make(chan int, len(reqs))
	for i := range reqs {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				if err := batchWait(ctx, cfg.limiter); err != nil {
					results[i] = BatchResult{Err: err}
					continue
				}
				resp, err := s.Synthesize(ctx, reqs[i])
				results[i] = BatchResult{Response: resp, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}

// batchWait blocks until the limiter admits the next request, or reports
// the context error when the batch has been canceled.
func batchWait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter != nil {
		return limiter.Wait(ctx)
	}
	return ctx.Err()
}
