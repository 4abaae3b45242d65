package clipboard

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/clipdate/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs call up to maxAttempts times with exponential backoff and
// ±25% jitter between attempts. Cancellation is never retried.
func (r *Resilient) doWithRetry(ctx context.Context, op string, call func() (string, error)) (string, error) {
	if r.retryCfg.maxAttempts <= 0 {
		return "", fmt.Errorf("clipboard: maxAttempts must be >= 1, got %d", r.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range r.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := r.waitForRetry(ctx, op, attempt, lastErr); err != nil {
				return "", err
			}
		}

		text, err := r.attempt(ctx, op, call)
		if err == nil {
			return text, nil
		}

		lastErr = err
		if !isRetryable(err) {
			return "", err
		}
	}

	return "", lastErr
}

// attempt runs call once through the circuit breaker. Rejected attempts
// never reach the provider and are not recorded as provider calls.
func (r *Resilient) attempt(ctx context.Context, op string, call func() (string, error)) (string, error) {
	return r.breaker.Execute(func() (string, error) {
		start := time.Now()
		text, err := call()
		r.recordMetrics(ctx, op, start, err)
		return text, err
	})
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation.
func (r *Resilient) waitForRetry(ctx context.Context, op string, attempt int, lastErr error) error {
	delay := backoff(attempt, r.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying clipboard call",
		slog.String("operation", "clipboard."+op),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", r.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a provider error may succeed on a later attempt.
// Context cancellation, deadline expiry, non-text contents and breaker
// rejections are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNotText) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	return true
}
