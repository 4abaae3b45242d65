package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/clipdate/internal/adapters/clipboard"
	adapthttp "github.com/jsamuelsen11/clipdate/internal/adapters/http"
	"github.com/jsamuelsen11/clipdate/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/clipdate/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/clipdate/internal/app"
	"github.com/jsamuelsen11/clipdate/internal/domain/date"
	"github.com/jsamuelsen11/clipdate/internal/platform/config"
	"github.com/jsamuelsen11/clipdate/internal/platform/health"
	"github.com/jsamuelsen11/clipdate/internal/platform/telemetry"
	"github.com/jsamuelsen11/clipdate/internal/ports"
)

const healthCheckTimeout = 2 * time.Second

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// TracerProvider returns the SDK provider, or the global one when telemetry
// is disabled.
func (o *otelProviders) TracerProvider() trace.TracerProvider {
	if o.tracer == nil {
		return otel.GetTracerProvider()
	}
	return o.tracer
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*clipboard.Resilient, error) {
		system, err := clipboard.NewSystem()
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return clipboard.NewResilient(system, &cfg.Clipboard, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Transcoder, error) {
		t, err := date.NewTranscoder(cfg.Watch.InputLayout, cfg.Watch.OutputLayout)
		if err != nil {
			return nil, err
		}
		return t, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Watcher, error) {
		cb, err := do.Invoke[*clipboard.Resilient](i)
		if err != nil {
			return nil, err
		}
		transcoder := do.MustInvoke[ports.Transcoder](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		tp := do.MustInvoke[trace.TracerProvider](i)
		return app.NewWatcher(cb, transcoder,
			app.WithInterval(cfg.Watch.Interval),
			app.WithBaselinePolicy(cfg.Watch.Baseline),
			app.WithStallAfter(cfg.Watch.StallAfter),
			app.WithMetrics(metrics),
			app.WithTracer(tp.Tracer("watcher")),
			app.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StatusHandler, error) {
		watcher := do.MustInvoke[*app.Watcher](i)
		return handlers.NewStatusHandler(watcher), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		statusH := do.MustInvoke[*handlers.StatusHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		tp := do.MustInvoke[trace.TracerProvider](i)

		return adapthttp.NewRouter(healthH, statusH,
			chimw.RequestID,
			middleware.Recovery(logger),
			middleware.OpenTelemetry(tp, metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthChecks adds the watcher and the clipboard breaker to the
// readiness registry once the graph is wired.
func registerHealthChecks(injector do.Injector) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*app.Watcher](injector))
	registry.Register(do.MustInvoke[*clipboard.Resilient](injector))
}
