package llm

import (
	"context"
	"time"
)

// DefaultMaxAttempts is the attempt budget applied to every model call.
const DefaultMaxAttempts = 3

// DefaultRetryDelay is the fixed pause between attempts.
const DefaultRetryDelay = 2 * time.Second

// RetryOptions configures the retry controller.
type RetryOptions struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryOptions returns the standard attempt budget and delay.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{MaxAttempts: DefaultMaxAttempts, Delay: DefaultRetryDelay}
}

// WithRetry runs op up to opts.MaxAttempts times with a fixed delay between
// attempts, returning the first success or the last observed error once the
// budget is exhausted. Context cancellation aborts between attempts, so a
// superseded run stops retrying instead of finishing in the background.
func WithRetry[T any](ctx context.Context, opts RetryOptions, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == opts.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(opts.Delay):
		}
	}
	return zero, lastErr
}

// RetryClient decorates a Client so the same retry policy applies uniformly
// to intent, cartography, expert, and synthesis calls.
type RetryClient struct {
	inner Client
	opts  RetryOptions
}

// NewRetryClient wraps a client with the retry controller.
func NewRetryClient(inner Client, opts RetryOptions) *RetryClient {
	return &RetryClient{inner: inner, opts: opts}
}

// GenerateContent retries the wrapped GenerateContent call.
func (c *RetryClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return WithRetry(ctx, c.opts, func(ctx context.Context) (string, error) {
		return c.inner.GenerateContent(ctx, prompt, tier)
	})
}

// GenerateJSON retries the wrapped GenerateJSON call.
func (c *RetryClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return WithRetry(ctx, c.opts, func(ctx context.Context) (string, error) {
		return c.inner.GenerateJSON(ctx, prompt, tier)
	})
}

// Close closes the wrapped client.
func (c *RetryClient) Close() error {
	return c.inner.Close()
}
