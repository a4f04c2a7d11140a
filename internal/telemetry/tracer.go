package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for control plane operations.
// These follow OpenTelemetry semantic conventions where applicable;
// control-plane specific keys use the "control." prefix.
const (
	// Client attributes
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// HTTP attributes
	AttrHTTPMethod = "http.request.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.response.status_code"

	// Control operation attributes
	AttrOperation      = "control.operation" // pause, resume, set_rps, ...
	AttrPhase          = "control.phase"     // Load test phase label
	AttrRPS            = "control.rps"
	AttrMaxOutstanding = "control.max_outstanding"
	AttrRunning        = "control.running"
	AttrOverrideKey    = "control.override_key"
)

// StartControlSpan starts a span for a control operation with standard
// attributes. The caller must call span.End().
func StartControlSpan(ctx context.Context, operation, clientIP string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, fmt.Sprintf("control.%s", operation),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String(AttrOperation, operation),
			attribute.String(AttrClientIP, clientIP),
		),
	)
}

// Phase returns an attribute for the load test phase label.
func Phase(name string) attribute.KeyValue {
	return attribute.String(AttrPhase, name)
}

// RPS returns an attribute for the target request rate.
func RPS(rps int32) attribute.KeyValue {
	return attribute.Int(AttrRPS, int(rps))
}

// MaxOutstanding returns an attribute for the in-flight request cap.
func MaxOutstanding(n int32) attribute.KeyValue {
	return attribute.Int(AttrMaxOutstanding, int(n))
}

// Running returns an attribute for the scheduler running indicator.
func Running(running bool) attribute.KeyValue {
	return attribute.Bool(AttrRunning, running)
}

// OverrideKey returns an attribute for a configuration override key.
func OverrideKey(key string) attribute.KeyValue {
	return attribute.String(AttrOverrideKey, key)
}
