// Package app provides the clipboard watch loop: it polls the clipboard
// through the ports.Clipboard port, reformats two-digit-year dates through
// the ports.Transcoder port, and writes the result back.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/clipdate/internal/platform/logging"
	"github.com/jsamuelsen11/clipdate/internal/platform/telemetry"
	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.WatcherStatus = (*Watcher)(nil)
	_ ports.HealthChecker = (*Watcher)(nil)
)

// DefaultInterval is the polling period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// ErrAlreadyRunning is returned by Run when the loop is already active.
var ErrAlreadyRunning = errors.New("watcher: already running")

// BaselinePolicy selects which value the loop remembers after rewriting the
// clipboard.
type BaselinePolicy string

const (
	// BaselineFormatted remembers the value written back, so the write is
	// never seen as a change.
	BaselineFormatted BaselinePolicy = "formatted"

	// BaselineOriginal remembers the value read. The next tick sees the
	// written value as a change and parses it once; it never matches the
	// input layout, so nothing is written.
	BaselineOriginal BaselinePolicy = "original"
)

// BaselinePolicies lists the accepted policies.
func BaselinePolicies() []BaselinePolicy {
	return []BaselinePolicy{BaselineFormatted, BaselineOriginal}
}

// Valid reports whether p is one of BaselinePolicies.
func (p BaselinePolicy) Valid() bool {
	return p == BaselineFormatted || p == BaselineOriginal
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the polling period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithBaselinePolicy sets the baseline policy. Unknown policies are ignored.
func WithBaselinePolicy(p BaselinePolicy) Option {
	return func(w *Watcher) {
		if p.Valid() {
			w.policy = p
		}
	}
}

// WithStallAfter makes HealthCheck fail when no tick has completed for d.
// Zero disables the check.
func WithStallAfter(d time.Duration) Option {
	return func(w *Watcher) { w.stallAfter = d }
}

// WithMetrics records loop counters on m. A nil m disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(w *Watcher) { w.metrics = m }
}

// WithTracer sets the tracer used for per-change spans.
func WithTracer(t trace.Tracer) Option {
	return func(w *Watcher) {
		if t != nil {
			w.tracer = t
		}
	}
}

// WithLogger sets the logger. It is also placed on the loop's context so
// the clipboard adapters log through it.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher polls the clipboard and rewrites MM/DD/YY dates as MM/DD/YYYY.
// One goroutine runs the loop; Status and HealthCheck are safe to call from
// any goroutine.
type Watcher struct {
	clipboard  ports.Clipboard
	transcoder ports.Transcoder
	interval   time.Duration
	policy     BaselinePolicy
	stallAfter time.Duration
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
	logger     *slog.Logger
	now        func() time.Time

	mu     sync.RWMutex
	status ports.WatchStatus
}

// NewWatcher creates a Watcher over the given ports. Defaults: 100ms
// interval, formatted baseline, no stall check, no metrics.
func NewWatcher(clipboard ports.Clipboard, transcoder ports.Transcoder, opts ...Option) *Watcher {
	w := &Watcher{
		clipboard:  clipboard,
		transcoder: transcoder,
		interval:   DefaultInterval,
		policy:     BaselineFormatted,
		tracer:     otel.GetTracerProvider().Tracer("watcher"),
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run reads the clipboard once as the baseline, then polls it every
// interval until ctx is canceled. It returns nil on cancellation and the
// first clipboard failure otherwise; failures are not retried here.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.begin() {
		return ErrAlreadyRunning
	}

	ctx = logging.WithLogger(ctx, w.logger)
	w.logger.InfoContext(ctx, "watching clipboard",
		slog.Duration("interval", w.interval),
		slog.String("baseline", string(w.policy)),
	)

	baseline, err := w.clipboard.Contents(ctx)
	if err != nil {
		return w.finish(ctx, "read baseline", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.finish(ctx, "", nil)
		case <-ticker.C:
		}

		baseline, err = w.poll(ctx, baseline)
		if err != nil {
			return w.finish(ctx, "poll", err)
		}
	}
}

// poll runs one tick against baseline and returns the next baseline.
func (w *Watcher) poll(ctx context.Context, baseline string) (string, error) {
	text, err := w.clipboard.Contents(ctx)
	w.recordTick(ctx)
	if err != nil {
		return baseline, err
	}
	if text == baseline {
		return baseline, nil
	}

	ctx, span := w.tracer.Start(ctx, "watcher.change")
	defer span.End()
	w.recordChange(ctx)

	d, ok := w.transcoder.Parse(text)
	span.SetAttributes(attribute.Bool("clipdate.date_found", ok))
	if !ok {
		w.logger.DebugContext(ctx, "clipboard changed", logging.Content(text))
		return text, nil
	}

	formatted := w.transcoder.Format(d)
	if err := w.clipboard.SetContents(ctx, formatted); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "clipboard write failed")
		return baseline, err
	}
	w.recordRewrite(ctx)

	w.logger.InfoContext(ctx, "reformatted clipboard date",
		logging.Content(formatted),
		slog.String("baseline", string(w.policy)),
	)

	if w.policy == BaselineOriginal {
		return text, nil
	}
	return formatted, nil
}

// Status returns a snapshot of the loop state.
func (w *Watcher) Status() ports.WatchStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status
}

// Name returns the health check identifier.
func (w *Watcher) Name() string { return "watcher" }

// HealthCheck fails when the loop is not running, has stopped with an
// error, or has not completed a tick within the stall window.
func (w *Watcher) HealthCheck(_ context.Context) error {
	s := w.Status()
	if !s.Running {
		if s.LastError != nil {
			return fmt.Errorf("watcher: stopped: %w", s.LastError)
		}
		return errors.New("watcher: not running")
	}

	if w.stallAfter <= 0 {
		return nil
	}
	last := s.LastTickAt
	if last.IsZero() {
		last = s.StartedAt
	}
	if idle := w.now().Sub(last); idle > w.stallAfter {
		return fmt.Errorf("watcher: no tick for %s", idle.Round(time.Millisecond))
	}
	return nil
}

// begin marks the loop running. It reports false if it already was.
func (w *Watcher) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.status.Running {
		return false
	}
	w.status = ports.WatchStatus{Running: true, StartedAt: w.now()}
	return true
}

// finish marks the loop stopped. Errors caused by cancellation are
// swallowed so that Run returns nil on shutdown.
func (w *Watcher) finish(ctx context.Context, op string, err error) error {
	if err != nil && ctx.Err() != nil {
		err = nil
	}

	w.update(func(s *ports.WatchStatus) {
		s.Running = false
		s.LastError = err
	})

	if err != nil {
		w.logger.ErrorContext(ctx, "clipboard watch failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return err
	}
	w.logger.InfoContext(ctx, "stopped watching clipboard")
	return nil
}

// update applies fn to the status under the write lock.
func (w *Watcher) update(fn func(*ports.WatchStatus)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.status)
}

func (w *Watcher) recordTick(ctx context.Context) {
	now := w.now()
	w.update(func(s *ports.WatchStatus) {
		s.Ticks++
		s.LastTickAt = now
	})
	if w.metrics != nil {
		w.metrics.WatchTicks.Add(ctx, 1)
	}
}

func (w *Watcher) recordChange(ctx context.Context) {
	now := w.now()
	w.update(func(s *ports.WatchStatus) {
		s.Changes++
		s.LastChangeAt = now
	})
	if w.metrics != nil {
		w.metrics.WatchChanges.Add(ctx, 1)
	}
}

func (w *Watcher) recordRewrite(ctx context.Context) {
	w.update(func(s *ports.WatchStatus) { s.Rewrites++ })
	if w.metrics != nil {
		w.metrics.WatchRewrites.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrPolicy.String(string(w.policy))))
	}
}
