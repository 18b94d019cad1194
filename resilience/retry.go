package resilience

import (
	"context"
	"math"
	"time"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int
	// Backoff is the delay before the second attempt. Zero retries
	// immediately.
	Backoff time.Duration
	// BackoffFactor multiplies the delay after every attempt. Values below 1
	// keep it constant.
	BackoffFactor float64
	// RetryIf determines if an error should be retried. Nil retries nothing.
	RetryIf func(error) bool
	// OnRetry is called before each retry.
	OnRetry func(attempt int, err error)
}

// Once retries a single time, immediately, when retryIf matches.
func Once(retryIf func(error) bool) RetryConfig {
	return RetryConfig{MaxAttempts: 2, RetryIf: retryIf}
}

// Retry executes fn until it succeeds, RetryIf rejects the error, the
// attempts are used up, or ctx is done. It returns the last error.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.RetryIf == nil || !cfg.RetryIf(err) || attempt == cfg.MaxAttempts {
			break
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		if d := backoff(attempt, cfg); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return zero, lastErr
}

// backoff returns the delay after the given attempt.
func backoff(attempt int, cfg RetryConfig) time.Duration {
	if cfg.Backoff <= 0 {
		return 0
	}
	factor := cfg.BackoffFactor
	if factor < 1 {
		factor = 1
	}
	return time.Duration(float64(cfg.Backoff) * math.Pow(factor, float64(attempt-1)))
}
