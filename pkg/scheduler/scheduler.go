// Package scheduler defines the load scheduler controlled by the control
// plane, and provides the paced Runner implementation used by the gale
// daemon.
package scheduler

// Scheduler is the narrow interface the control plane uses to drive the
// load-generation worker. The control plane never owns the scheduler; it
// holds a reference for its whole lifetime and only invokes it.
//
// None of these methods return errors: delegation is assumed infallible
// from the control plane's point of view, and any policy (rate bounds,
// concurrency limits) is owned by the implementation.
type Scheduler interface {
	// Pause stops issuing new requests until Resume is called.
	Pause()

	// Resume restarts request pacing and reports whether the scheduler
	// is running afterwards.
	Resume() bool

	// SetPhase records the operator-assigned label for the current
	// stage of the load test.
	SetPhase(name string)

	// Phase returns the current phase label.
	Phase() string

	// SetRPS sets the target request rate. Values are forwarded
	// unchecked; the scheduler owns any range policy.
	SetRPS(rps int32)

	// RPS returns the current target request rate.
	RPS() int32

	// SetMaxOutstanding caps the number of concurrent in-flight
	// requests. Values are forwarded unchecked.
	SetMaxOutstanding(n int32)

	// MaxOutstanding returns the current in-flight request cap.
	MaxOutstanding() int32

	// IsRunning reports whether the scheduler is currently issuing
	// requests.
	IsRunning() bool
}
