// Package health provides a thread-safe registry of health checks for the
// clipboard provider and the watch loop. The ops readiness endpoint reports
// the registry's results.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// defaultMaxConcurrency bounds how many checks run at once.
const defaultMaxConcurrency = 4

// Option configures a Registry.
type Option func(*Registry)

// WithMaxConcurrency bounds how many checks CheckAll runs at once.
// Values below 1 are ignored.
func WithMaxConcurrency(n int) Option {
	return func(r *Registry) {
		if n >= 1 {
			r.maxConcurrency = n
		}
	}
}

// WithCheckTimeout gives each check its own deadline. Zero means checks
// only see the caller's deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.checkTimeout = d }
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	maxConcurrency int
	checkTimeout   time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{maxConcurrency: defaultMaxConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. Checks run
// concurrently without holding the lock, so a slow clipboard check never
// blocks Register. When two checkers share a name, the one registered last
// wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := r.run(ctx, checkers)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// run executes the checks with at most maxConcurrency in flight. Results are
// in input order. A check still waiting for a slot when ctx ends records
// ctx.Err() and is not called.
func (r *Registry) run(ctx context.Context, checkers []ports.HealthChecker) []error {
	errs := make([]error, len(checkers))
	sem := make(chan struct{}, r.maxConcurrency)
	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Add(1)
		go func(idx int, c ports.HealthChecker) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			errs[idx] = r.check(ctx, c)
		}(i, c)
	}

	wg.Wait()
	return errs
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}

// Check adapts a plain function to [ports.HealthChecker].
type Check struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

// Name returns the check's name.
func (c Check) Name() string { return c.CheckName }

// HealthCheck runs the function. A nil Fn is always healthy.
func (c Check) HealthCheck(ctx context.Context) error {
	if c.Fn == nil {
		return nil
	}
	return c.Fn(ctx)
}
