package telemetry

// Config controls trace export for the worker.
type Config struct {
	Enabled        bool    // export spans when true
	ServiceName    string  // service.name resource attribute
	ServiceVersion string  // service.version resource attribute
	Endpoint       string  // OTLP gRPC endpoint, host:port
	Insecure       bool    // dial the collector without TLS
	SampleRate     float64 // fraction of traces kept, 0.0 to 1.0
}

// DefaultConfig returns the settings used when the config file leaves
// the telemetry section out: tracing off, local collector assumed.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "gale",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}
