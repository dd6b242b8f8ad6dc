package server

import (
	"log/slog"
	"time"

	"github.com/cssonce/cssonce/pkg/metrics"
)

// Config configures the demo server.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// TracerName names the OpenTelemetry tracer (default "cssonce").
	TracerName string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is the collector to record emissions into. A nil value
	// registers a new collector on the default Prometheus registry.
	Metrics *metrics.Collector
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
		TracerName:      "cssonce",
	}
}

// fillDefaults replaces zero fields with defaults.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.TracerName == "" {
		c.TracerName = defaults.TracerName
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NewCollector()
	}
}
