// Package schedtest provides a fake Scheduler for control plane tests.
package schedtest

import (
	"sync"

	"github.com/windtunnel-io/gale/pkg/scheduler"
)

// Fake is an in-memory Scheduler that records every call it receives.
type Fake struct {
	mu sync.Mutex

	running bool
	phase   string
	rps     int32
	maxOut  int32

	// Calls records the method names invoked, in order.
	Calls []string

	// ResumeResult is returned by Resume. Defaults to true after the
	// state change, mirroring a scheduler that always restarts.
	ResumeResult *bool
}

// NewFake creates a Fake scheduler in the running state.
func NewFake() *Fake {
	return &Fake{
		running: true,
		phase:   scheduler.UnknownPhase,
		rps:     10,
		maxOut:  100,
	}
}

func (f *Fake) record(call string) {
	f.Calls = append(f.Calls, call)
}

// Pause implements scheduler.Scheduler.
func (f *Fake) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Pause")
	f.running = false
}

// Resume implements scheduler.Scheduler.
func (f *Fake) Resume() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Resume")
	f.running = true
	if f.ResumeResult != nil {
		return *f.ResumeResult
	}
	return f.running
}

// SetPhase implements scheduler.Scheduler.
func (f *Fake) SetPhase(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetPhase")
	f.phase = name
}

// Phase implements scheduler.Scheduler.
func (f *Fake) Phase() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// SetRPS implements scheduler.Scheduler.
func (f *Fake) SetRPS(rps int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetRPS")
	f.rps = rps
}

// RPS implements scheduler.Scheduler.
func (f *Fake) RPS() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rps
}

// SetMaxOutstanding implements scheduler.Scheduler.
func (f *Fake) SetMaxOutstanding(n int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetMaxOutstanding")
	f.maxOut = n
}

// MaxOutstanding implements scheduler.Scheduler.
func (f *Fake) MaxOutstanding() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxOut
}

// IsRunning implements scheduler.Scheduler.
func (f *Fake) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

var _ scheduler.Scheduler = (*Fake)(nil)
