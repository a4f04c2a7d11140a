package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so control actions
// can be aggregated and queried by field.
const (
	// Distributed tracing
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// Control operations
	KeyOperation = "operation" // Control operation name: pause, resume, set_rps, ...
	KeyPhase     = "phase"     // Load test phase label
	KeyRPS       = "rps"       // Target requests per second
	KeyMaxOut    = "max_outstanding"
	KeyRunning   = "running" // Scheduler running indicator
	KeyStatus    = "status"  // Service status name

	// Configuration overrides
	KeyKey   = "key"   // Override key
	KeyValue = "value" // Override value

	// Client identification
	KeyClientIP  = "client_ip"  // Client IP address
	KeyRequestID = "request_id" // HTTP request ID

	// Operation metadata
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyPort       = "port"        // Listen port
)

// Field constructors for type safety.

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Operation returns a slog.Attr for a control operation name
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Phase returns a slog.Attr for a load test phase label
func Phase(name string) slog.Attr {
	return slog.String(KeyPhase, name)
}

// RPS returns a slog.Attr for a target request rate
func RPS(rps int32) slog.Attr {
	return slog.Int(KeyRPS, int(rps))
}

// MaxOutstanding returns a slog.Attr for the in-flight request cap
func MaxOutstanding(n int32) slog.Attr {
	return slog.Int(KeyMaxOut, int(n))
}

// Running returns a slog.Attr for the scheduler running indicator
func Running(running bool) slog.Attr {
	return slog.Bool(KeyRunning, running)
}

// Status returns a slog.Attr for a service status name
func Status(name string) slog.Attr {
	return slog.String(KeyStatus, name)
}

// Key returns a slog.Attr for an override key
func Key(k string) slog.Attr {
	return slog.String(KeyKey, k)
}

// Value returns a slog.Attr for an override value
func Value(v string) slog.Attr {
	return slog.String(KeyValue, v)
}

// ClientIP returns a slog.Attr for client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// RequestID returns a slog.Attr for an HTTP request ID
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Port returns a slog.Attr for a listen port
func Port(port int) slog.Attr {
	return slog.Int(KeyPort, port)
}
