package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryConfig configures the bounded-retry policy for one-shot LLM calls.
type RetryConfig struct {
	MaxAttempts     int           // Total attempts, including the first
	InitialInterval time.Duration // First backoff interval
	MaxInterval     time.Duration // Backoff ceiling
}

// DefaultRetryConfig returns sensible defaults for LLM API calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
	}
}

// Retry runs fn up to cfg.MaxAttempts times with exponential backoff,
// retrying only while shouldRetry(err) is true. The predicate makes the
// policy explicit at the call site instead of hiding it behind a decorator:
// one-shot generation passes Retryable, callers that must not retry at all
// simply don't wrap.
//
// Backoff sleeps are interruptible by ctx; the last error is returned after
// exhaustion, annotated with the attempt count.
func Retry[T any](ctx context.Context, cfg RetryConfig, logger *slog.Logger, shouldRetry func(error) bool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	delay := cfg.InitialInterval
	start := time.Now()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			if attempt > 1 && logger != nil {
				logger.Debug("call succeeded after retry",
					"attempts", attempt,
					"elapsed", time.Since(start))
			}
			return result, nil
		}
		lastErr = err

		// Non-retryable errors propagate untouched so typed errors stay
		// visible to errors.As at the caller.
		if !shouldRetry(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		if logger != nil {
			logger.Warn("retrying after transient error",
				"attempt", attempt,
				"delay", delay,
				"error", err)
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("context canceled during retry: %w", ctx.Err())
		case <-time.After(delay):
			delay = min(delay*2, cfg.MaxInterval)
		}
	}

	return zero, fmt.Errorf("after %d attempt(s) (elapsed: %v): %w",
		cfg.MaxAttempts, time.Since(start).Round(time.Millisecond), lastErr)
}
