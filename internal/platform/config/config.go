// Package config provides configuration loading and validation for clipdate.
// Configuration is loaded with a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars -> command-line overrides.
package config

import (
	"time"

	"github.com/jsamuelsen11/clipdate/internal/app"
)

// Config holds all configuration for clipdate.
type Config struct {
	Watch     WatchConfig     `koanf:"watch"`
	Clipboard ClipboardConfig `koanf:"clipboard"`
	Log       LogConfig       `koanf:"log"`
	Server    ServerConfig    `koanf:"server"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// WatchConfig holds change-watch loop settings.
type WatchConfig struct {
	Interval     time.Duration      `koanf:"interval"`
	InputLayout  string             `koanf:"input_layout"`
	OutputLayout string             `koanf:"output_layout"`
	Baseline     app.BaselinePolicy `koanf:"baseline"`
	// StallAfter marks the watcher unhealthy when no tick completed within
	// this duration. Zero disables the check.
	StallAfter time.Duration `koanf:"stall_after"`
}

// ClipboardConfig holds clipboard provider resilience settings.
type ClipboardConfig struct {
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	WriteRate      RateLimitConfig      `koanf:"write_rate"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// MaxAttempts of 1 means a failed clipboard call is not retried.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig limits clipboard writes. A zero PerSecond disables it.
type RateLimitConfig struct {
	PerSecond float64 `koanf:"per_second"`
	Burst     int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level         string `koanf:"level"`
	Format        string `koanf:"format"`
	RedactContent bool   `koanf:"redact_content"`
}

// ServerConfig holds the ops HTTP server settings.
type ServerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
