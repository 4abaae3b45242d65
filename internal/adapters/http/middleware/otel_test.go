package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/clipdate/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/clipdate/internal/platform/telemetry"
)

func setupTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return tp, exporter
}

// routed mounts h at pattern behind the middleware so chi records the route.
func routed(mw func(http.Handler) http.Handler, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get(pattern, h)
	return r
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTracer(t)

	handler := routed(middleware.OpenTelemetry(tp, nil), "/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name != "HTTP GET /health/ready" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "HTTP GET /health/ready")
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTracer(t)

	handler := routed(middleware.OpenTelemetry(tp, nil), "/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/random/unrouted/path", http.NoBody)
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name != "HTTP GET unmatched" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "HTTP GET unmatched")
	}
}

func TestOpenTelemetry_SetsSpanAttributes(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTracer(t)

	handler := routed(middleware.OpenTelemetry(tp, nil), "/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", http.NoBody)
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}

	attrs := make(map[string]any)
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}

	if method, ok := attrs["http.method"].(string); !ok || method != "GET" {
		t.Errorf("http.method attr = %v, want %q", attrs["http.method"], "GET")
	}
	if route, ok := attrs["http.route"].(string); !ok || route != "/status" {
		t.Errorf("http.route attr = %v, want %q", attrs["http.route"], "/status")
	}
	if status, ok := attrs["http.status_code"].(int64); !ok || status != http.StatusServiceUnavailable {
		t.Errorf("http.status_code attr = %v, want %d", attrs["http.status_code"], http.StatusServiceUnavailable)
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %d, want %d (Error)", spans[0].Status.Code, codes.Error)
	}
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tp, _ := setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "clipdate-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	handler := routed(middleware.OpenTelemetry(tp, metrics), "/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
		handler.ServeHTTP(rec, req)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	if total != 3 {
		t.Errorf("http.server.request.total = %d, want 3", total)
	}
}

func TestOpenTelemetry_NilArgsNoPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
