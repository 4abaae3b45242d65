package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/clipdate/internal/app"
	"github.com/jsamuelsen11/clipdate/internal/domain/date"
)

// Exporter names accepted by telemetry.exporter.
const (
	exporterStdout = "stdout"
	exporterOTLP   = "otlp"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Watch.validate(),
		c.Clipboard.validate(),
		c.Log.validate(),
		c.Server.validate(),
		c.Telemetry.validate(),
	)
}

func (w *WatchConfig) validate() error {
	var errs []error

	if w.Interval <= 0 {
		errs = append(errs, fmt.Errorf("watch.interval must be positive, got %s", w.Interval))
	}
	if w.StallAfter < 0 {
		errs = append(errs, fmt.Errorf("watch.stall_after must not be negative, got %s", w.StallAfter))
	}

	if !w.Baseline.Valid() {
		errs = append(errs, fmt.Errorf("watch.baseline must be one of: %v; got %q",
			app.BaselinePolicies(), w.Baseline))
	}

	if err := date.ValidateLayouts(w.InputLayout, w.OutputLayout); err != nil {
		errs = append(errs, fmt.Errorf("watch layouts: %w", err))
	}

	return errors.Join(errs...)
}

func (cl *ClipboardConfig) validate() error {
	var errs []error

	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("clipboard.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("clipboard.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.Retry.InitialInterval < 0 || cl.Retry.MaxInterval < 0 {
		errs = append(errs, errors.New("clipboard.retry intervals must not be negative"))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("clipboard.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.WriteRate.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("clipboard.write_rate.per_second must not be negative, got %f",
			cl.WriteRate.PerSecond))
	}
	if cl.WriteRate.PerSecond > 0 && cl.WriteRate.Burst < 1 {
		errs = append(errs, fmt.Errorf("clipboard.write_rate.burst must be >= 1 when rate limiting, got %d",
			cl.WriteRate.Burst))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	if !s.Enabled {
		return nil
	}

	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case exporterStdout, exporterOTLP:
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == exporterOTLP && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
