package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/clipdate/internal/domain"
	"github.com/jsamuelsen11/clipdate/internal/platform/config"
	"github.com/jsamuelsen11/clipdate/internal/platform/telemetry"
	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Clipboard     = (*Resilient)(nil)
	_ ports.HealthChecker = (*Resilient)(nil)
)

const breakerName = "clipboard"

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Resilient decorates a clipboard provider with a write rate limit, retry
// with exponential backoff, a circuit breaker and per-attempt metrics,
// applied in this order:
//
//	Rate Limiter (writes) -> Retry -> Circuit Breaker -> Provider
//
// The breaker counts individual attempts, so a provider that keeps failing
// opens it mid-retry and the remaining attempts fail fast with
// domain.ErrUnavailable.
//
// With max_attempts = 1 every failure is returned on the first attempt, so
// the watch loop keeps its fatal, no-retry behavior.
type Resilient struct {
	next     ports.Clipboard
	breaker  *gobreaker.CircuitBreaker[string]
	limiter  *rate.Limiter // nil when write rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
}

// NewResilient wraps next. If metrics is nil, metric recording is skipped.
// The logger receives circuit breaker state changes; retries are logged
// through the logger carried by the call's context.
func NewResilient(next ports.Clipboard, cfg *config.ClipboardConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Resilient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Cancellation says nothing about the clipboard's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.WriteRate.PerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WriteRate.PerSecond), cfg.WriteRate.Burst)
	}

	return &Resilient{
		next:    next,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
	}
}

// Contents reads the clipboard through the retry policy. Every attempt
// passes through the breaker.
func (r *Resilient) Contents(ctx context.Context) (string, error) {
	text, err := r.doWithRetry(ctx, domain.OpRead, func() (string, error) {
		return r.next.Contents(ctx)
	})
	if err != nil {
		return "", r.wrapBreakerErr(domain.OpRead, err)
	}
	return text, nil
}

// SetContents waits for the write rate limiter, then writes the clipboard
// through the retry policy. Every attempt passes through the breaker.
func (r *Resilient) SetContents(ctx context.Context, text string) error {
	if err := r.waitForRateLimit(ctx); err != nil {
		return domain.NewClipboardError(domain.OpWrite, err)
	}
	_, err := r.doWithRetry(ctx, domain.OpWrite, func() (string, error) {
		return "", r.next.SetContents(ctx, text)
	})
	if err != nil {
		return r.wrapBreakerErr(domain.OpWrite, err)
	}
	return nil
}

// Name returns the health check identifier.
func (r *Resilient) Name() string { return breakerName }

// HealthCheck reports clipboard availability from the circuit breaker
// state. No clipboard call is made.
func (r *Resilient) HealthCheck(_ context.Context) error {
	state := r.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", breakerName, state)
	}
}

// wrapBreakerErr turns breaker rejections into clipboard errors that match
// domain.ErrUnavailable. Provider errors pass through unchanged.
func (r *Resilient) wrapBreakerErr(op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewClipboardError(op, fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
	}
	if !errors.Is(err, domain.ErrClipboard) {
		return domain.NewClipboardError(op, err)
	}
	return err
}

// waitForRateLimit blocks until the write limiter allows the call or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (r *Resilient) waitForRateLimit(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

// recordMetrics records one provider attempt. Safe to call with nil metrics.
func (r *Resilient) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	r.metrics.ClipboardDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		r.metrics.ClipboardErrors.Add(ctx, 1, attrs)
	}
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
