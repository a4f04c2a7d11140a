// Package status provides the process-wide service status register.
//
// The register holds the current lifecycle status of the worker and the
// timestamp the process came up. Status transitions are not validated:
// any status may be set at any time, and deciding when to transition is
// the caller's responsibility.
package status

import (
	"sync"
	"time"
)

// ServiceStatus is a service lifecycle state.
//
// The set mirrors the standard fb303-style status vocabulary so existing
// health tooling can interpret the numeric codes.
type ServiceStatus int

const (
	Dead ServiceStatus = iota
	Starting
	Alive
	Stopping
	Stopped
	Warning
)

// String returns the canonical upper-case name of the status.
func (s ServiceStatus) String() string {
	switch s {
	case Dead:
		return "DEAD"
	case Starting:
		return "STARTING"
	case Alive:
		return "ALIVE"
	case Stopping:
		return "STOPPING"
	case Stopped:
		return "STOPPED"
	case Warning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// Register is a thread-safe holder of the current service status.
//
// Reads proceed concurrently; writes are exclusive. The alive-since
// timestamp is captured once at construction and never changes.
type Register struct {
	mu         sync.RWMutex
	status     ServiceStatus
	aliveSince time.Time
}

// NewRegister creates a Register in the Starting state with the
// alive-since timestamp set to now.
func NewRegister() *Register {
	return &Register{
		status:     Starting,
		aliveSince: time.Now(),
	}
}

// SetStatus unconditionally overwrites the current status.
func (r *Register) SetStatus(s ServiceStatus) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}

// Status returns the current status.
func (r *Register) Status() ServiceStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// StatusDetails returns the human-readable name of the current status.
func (r *Register) StatusDetails() string {
	return r.Status().String()
}

// AliveSince returns the construction-time timestamp as seconds since epoch.
func (r *Register) AliveSince() int64 {
	return r.aliveSince.Unix()
}

// StartedAt returns the construction-time timestamp.
func (r *Register) StartedAt() time.Time {
	return r.aliveSince
}

// Uptime returns the duration since the register was constructed.
func (r *Register) Uptime() time.Duration {
	return time.Since(r.aliveSince)
}
