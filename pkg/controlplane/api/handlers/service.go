package handlers

import "github.com/windtunnel-io/gale/pkg/controlplane/status"

// ControlService is the control plane surface the HTTP handlers drive.
// It is implemented by the controlplane.Service facade; handlers depend
// on this interface so the api package never imports its parent.
type ControlService interface {
	// Identity and lifecycle.
	InstanceID() string
	Status() status.ServiceStatus
	StatusDetails() string
	AliveSince() int64

	// Scheduler control. None of these fail: pause and the
	// phase-setting resume always report success, and the setters
	// forward values unchecked.
	Pause() bool
	Resume() bool
	ResumeWithPhase(phase string) bool
	SetRPS(rps int32)
	SetMaxOutstanding(n int32)
	GetRate() (running bool, rps, maxOutstanding int32)
	Phase() string

	// Runtime configuration overrides. Absent keys read as empty, and
	// the whole store is cleared by Pause.
	SetOverride(key, value string)
	LookupOverride(key string) (string, bool)
	Overrides() map[string]string

	// Counters returns a flat snapshot of all exported counters.
	Counters() (map[string]int64, error)
}
