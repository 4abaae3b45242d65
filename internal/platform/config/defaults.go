package config

import "github.com/jsamuelsen11/clipdate/internal/app"

const (
	defaultServerPort = 8790

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultWriteBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML,
// env vars, and command-line flags.
func defaults() map[string]any {
	return map[string]any{
		"watch.interval":      "100ms",
		"watch.input_layout":  "01/02/06",
		"watch.output_layout": "01/02/2006",
		"watch.baseline":      string(app.BaselineFormatted),
		"watch.stall_after":   "0s",

		"clipboard.retry.max_attempts":              defaultRetryMaxAttempts,
		"clipboard.retry.initial_interval":          "50ms",
		"clipboard.retry.max_interval":              "1s",
		"clipboard.retry.multiplier":                defaultRetryMultiplier,
		"clipboard.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"clipboard.circuit_breaker.timeout":         "30s",
		"clipboard.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"clipboard.write_rate.per_second":           0.0,
		"clipboard.write_rate.burst":                defaultWriteBurst,

		"log.level":          "info",
		"log.format":         "json",
		"log.redact_content": true,

		"server.enabled":       false,
		"server.host":          "127.0.0.1",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "clipdate",
	}
}
