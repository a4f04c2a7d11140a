package config

import (
	"strings"
	"time"

	"github.com/windtunnel-io/gale/pkg/scheduler"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyShutdownTimeoutDefaults(cfg)
	applyControlPlaneDefaults(cfg)
	applySchedulerDefaults(&cfg.Scheduler)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	// Enabled defaults to false (opt-in for telemetry)

	// Default endpoint is localhost:4317 (standard OTLP gRPC port)
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}

	// Default sample rate is 1.0 (sample all traces)
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}

	applyProfilingDefaults(&cfg.Profiling)
}

// applyProfilingDefaults sets Pyroscope profiling defaults.
func applyProfilingDefaults(cfg *ProfilingConfig) {
	// Enabled defaults to false (opt-in for profiling)

	// Default endpoint is localhost:4040 (standard Pyroscope port)
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:4040"
	}

	if len(cfg.ProfileTypes) == 0 {
		cfg.ProfileTypes = []string{
			"cpu",
			"alloc_objects",
			"alloc_space",
			"inuse_objects",
			"inuse_space",
			"goroutines",
		}
	}
}

// applyShutdownTimeoutDefaults sets shutdown timeout defaults.
func applyShutdownTimeoutDefaults(cfg *Config) {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
}

// applyControlPlaneDefaults sets control API server defaults.
// The API is always enabled (it is the only way to drive a running worker).
func applyControlPlaneDefaults(cfg *Config) {
	if cfg.ControlPlane.Port == 0 {
		cfg.ControlPlane.Port = 8080
	}
	if cfg.ControlPlane.ReadTimeout == 0 {
		cfg.ControlPlane.ReadTimeout = 10 * time.Second
	}
	if cfg.ControlPlane.WriteTimeout == 0 {
		cfg.ControlPlane.WriteTimeout = 10 * time.Second
	}
	if cfg.ControlPlane.IdleTimeout == 0 {
		cfg.ControlPlane.IdleTimeout = 60 * time.Second
	}
	if cfg.ControlPlane.ShutdownTimeout == 0 {
		cfg.ControlPlane.ShutdownTimeout = 5 * time.Second
	}
}

// applySchedulerDefaults sets load scheduler defaults.
func applySchedulerDefaults(cfg *SchedulerConfig) {
	if cfg.RPS == 0 {
		cfg.RPS = 10
	}
	if cfg.MaxOutstanding == 0 {
		cfg.MaxOutstanding = 100
	}
	if cfg.Phase == "" {
		cfg.Phase = scheduler.UnknownPhase
	}
	if cfg.Target.Method == "" {
		cfg.Target.Method = "GET"
	}
	if cfg.Target.Timeout == 0 {
		cfg.Target.Timeout = 10 * time.Second
	}
	// Target.URL has no default - empty means a dry run
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
