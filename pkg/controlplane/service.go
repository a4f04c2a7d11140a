// Package controlplane implements the runtime control and status surface
// of the gale daemon: service status reporting, scheduler pause/resume,
// rate and concurrency control, and runtime configuration overrides.
//
// The Service facade owns the status register and override store and
// holds a reference to the scheduler it drives. Exactly one Service is
// installed per process through the registry package; Bootstrap wires
// it together with the HTTP API server.
package controlplane

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/pkg/controlplane/overrides"
	"github.com/windtunnel-io/gale/pkg/controlplane/status"
	"github.com/windtunnel-io/gale/pkg/metrics"
	"github.com/windtunnel-io/gale/pkg/scheduler"
)

// Service is the control plane facade. It exposes every operation the
// control API and operator tooling need, delegating scheduler control
// to the scheduler and owning the status register and override store.
//
// All methods are safe for concurrent use.
type Service struct {
	instanceID uuid.UUID
	status     *status.Register
	overrides  *overrides.Store
	sched      scheduler.Scheduler
	metrics    *metrics.ControlMetrics
}

// NewService creates a Service driving sched. The status register starts
// in the Starting state; callers transition it as the process comes up.
// A nil ControlMetrics disables operation counting.
func NewService(sched scheduler.Scheduler, ctrl *metrics.ControlMetrics) *Service {
	return &Service{
		instanceID: uuid.New(),
		status:     status.NewRegister(),
		overrides:  overrides.NewStore(),
		sched:      sched,
		metrics:    ctrl,
	}
}

// InstanceID returns the unique identifier assigned to this process's
// control service at construction.
func (s *Service) InstanceID() string {
	return s.instanceID.String()
}

// Status returns the current service status.
func (s *Service) Status() status.ServiceStatus {
	return s.status.Status()
}

// SetStatus overwrites the current service status.
func (s *Service) SetStatus(st status.ServiceStatus) {
	logger.Info("Service status changed", "status", st.String())
	s.status.SetStatus(st)
}

// StatusDetails returns the human-readable name of the current status.
func (s *Service) StatusDetails() string {
	return s.status.StatusDetails()
}

// AliveSince returns the process start time as seconds since epoch.
func (s *Service) AliveSince() int64 {
	return s.status.AliveSince()
}

// StatusRegister exposes the underlying register for lifecycle wiring.
func (s *Service) StatusRegister() *status.Register {
	return s.status
}

// Pause stops the scheduler and clears every runtime configuration
// override, resetting tunables to their compiled-in defaults. Pausing is
// always reported as successful, including when already paused.
func (s *Service) Pause() bool {
	logger.Info("Pausing scheduler")
	s.sched.Pause()
	s.overrides.Clear()
	s.metrics.IncPause()
	return true
}

// Resume restarts the scheduler and reports whether it is running
// afterwards. The phase label is left untouched.
func (s *Service) Resume() bool {
	logger.Info("Resuming scheduler")
	running := s.sched.Resume()
	s.metrics.IncResume()
	return running
}

// ResumeWithPhase sets the phase label and restarts the scheduler. An
// empty phase name maps to scheduler.UnknownPhase; the operation always
// reports success.
func (s *Service) ResumeWithPhase(phase string) bool {
	if phase == "" {
		phase = scheduler.UnknownPhase
	}
	logger.Info("Resuming scheduler", "phase", phase)
	s.sched.SetPhase(phase)
	s.sched.Resume()
	s.metrics.IncResume()
	return true
}

// SetRPS forwards the target request rate to the scheduler. The value is
// passed through unchecked; rate policy belongs to the scheduler.
func (s *Service) SetRPS(rps int32) {
	logger.Info("Target rate changed", "rps", rps)
	s.sched.SetRPS(rps)
	s.metrics.IncRateChange()
}

// SetMaxOutstanding forwards the in-flight request cap to the scheduler,
// unchecked.
func (s *Service) SetMaxOutstanding(n int32) {
	logger.Info("Max outstanding changed", "max_outstanding", n)
	s.sched.SetMaxOutstanding(n)
	s.metrics.IncMaxOutstandingChange()
}

// GetRate returns a snapshot of the scheduler's pacing state. The three
// values are read independently, so the snapshot is only as atomic as
// the scheduler's own accessors.
func (s *Service) GetRate() (running bool, rps, maxOutstanding int32) {
	return s.sched.IsRunning(), s.sched.RPS(), s.sched.MaxOutstanding()
}

// Phase returns the scheduler's current phase label.
func (s *Service) Phase() string {
	return s.sched.Phase()
}

// SetOverride inserts or overwrites a runtime configuration override.
func (s *Service) SetOverride(key, value string) {
	s.overrides.Set(key, value)
	s.metrics.IncOverrideWrite()
}

// Override returns the stored override for key, or the empty string if
// the key is absent. Absence is not an error.
func (s *Service) Override(key string) string {
	return s.overrides.Get(key)
}

// LookupOverride returns the stored override for key and whether it was
// present.
func (s *Service) LookupOverride(key string) (string, bool) {
	return s.overrides.Lookup(key)
}

// OverrideUint returns the override for key parsed as a uint32, falling
// back to defaultValue when the key is absent or the value does not
// parse. Parse failures are logged and counted but never surfaced.
func (s *Service) OverrideUint(key string, defaultValue uint32) uint32 {
	v, ok := s.overrides.Lookup(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		logger.Warn("Failed to parse override as unsigned integer",
			"key", key, "value", v, "error", err)
		s.metrics.IncOverrideParseFailure()
		return defaultValue
	}
	return uint32(parsed)
}

// Overrides returns a copy of all stored overrides.
func (s *Service) Overrides() map[string]string {
	return s.overrides.Snapshot()
}

// OverrideStore exposes the underlying store for lifecycle wiring.
func (s *Service) OverrideStore() *overrides.Store {
	return s.overrides
}

// Counters returns a flat snapshot of every registered counter and
// gauge. The map is empty when metrics collection is disabled.
func (s *Service) Counters() (map[string]int64, error) {
	return metrics.Counters()
}
