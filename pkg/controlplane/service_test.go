package controlplane

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windtunnel-io/gale/pkg/controlplane/status"
	"github.com/windtunnel-io/gale/pkg/scheduler"
	"github.com/windtunnel-io/gale/pkg/scheduler/schedtest"
)

func newTestService(t *testing.T) (*Service, *schedtest.Fake) {
	t.Helper()
	fake := schedtest.NewFake()
	return NewService(fake, nil), fake
}

func TestNewServiceStartsStarting(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, status.Starting, svc.Status())
	assert.Equal(t, "STARTING", svc.StatusDetails())
	assert.NotEmpty(t, svc.InstanceID())
	assert.Greater(t, svc.AliveSince(), int64(0))
}

func TestInstanceIDsAreUnique(t *testing.T) {
	a, _ := newTestService(t)
	b, _ := newTestService(t)
	assert.NotEqual(t, a.InstanceID(), b.InstanceID())
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestService(t)

	svc.SetStatus(status.Alive)
	assert.Equal(t, status.Alive, svc.Status())

	svc.SetStatus(status.Stopping)
	assert.Equal(t, status.Stopping, svc.Status())
}

func TestPauseAlwaysSucceedsAndClearsOverrides(t *testing.T) {
	svc, fake := newTestService(t)

	svc.SetOverride("latency_budget_ms", "250")
	svc.SetOverride("workers", "8")

	assert.True(t, svc.Pause())
	assert.False(t, fake.IsRunning())
	assert.Empty(t, svc.Overrides(), "pause must reset all runtime overrides")

	// Pausing an already-paused scheduler still reports success and
	// still clears any overrides written in between.
	svc.SetOverride("workers", "4")
	assert.True(t, svc.Pause())
	assert.Empty(t, svc.Overrides())
}

func TestResumeReportsSchedulerState(t *testing.T) {
	svc, fake := newTestService(t)

	fake.Pause()
	assert.True(t, svc.Resume())
	assert.True(t, fake.IsRunning())

	// Resume reports whatever the scheduler says, including failure to
	// restart.
	stuck := false
	fake.ResumeResult = &stuck
	assert.False(t, svc.Resume())
}

func TestResumeDoesNotTouchPhase(t *testing.T) {
	svc, fake := newTestService(t)

	fake.SetPhase("warmup")
	svc.Resume()
	assert.Equal(t, "warmup", fake.Phase())
}

func TestResumeWithPhase(t *testing.T) {
	tests := []struct {
		name      string
		phase     string
		wantPhase string
	}{
		{name: "named phase", phase: "steady_state", wantPhase: "steady_state"},
		{name: "empty phase defaults", phase: "", wantPhase: scheduler.UnknownPhase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake := newTestService(t)
			fake.Pause()

			assert.True(t, svc.ResumeWithPhase(tt.phase))
			assert.True(t, fake.IsRunning())
			assert.Equal(t, tt.wantPhase, fake.Phase())
		})
	}
}

func TestResumeWithPhaseAlwaysSucceeds(t *testing.T) {
	svc, fake := newTestService(t)

	// Even when the scheduler reports it is not running afterwards, the
	// phase-setting resume reports success.
	stuck := false
	fake.ResumeResult = &stuck
	assert.True(t, svc.ResumeWithPhase("rampdown"))
}

func TestSetRPSThenGetRate(t *testing.T) {
	svc, fake := newTestService(t)

	svc.SetRPS(500)
	assert.Equal(t, int32(500), fake.RPS())

	running, rps, maxOut := svc.GetRate()
	assert.True(t, running)
	assert.Equal(t, int32(500), rps)
	assert.Equal(t, int32(100), maxOut)
}

func TestSetMaxOutstanding(t *testing.T) {
	svc, fake := newTestService(t)

	svc.SetMaxOutstanding(64)
	assert.Equal(t, int32(64), fake.MaxOutstanding())

	_, _, maxOut := svc.GetRate()
	assert.Equal(t, int32(64), maxOut)
}

func TestValuesPassThroughUnchecked(t *testing.T) {
	svc, fake := newTestService(t)

	svc.SetRPS(-1)
	assert.Equal(t, int32(-1), fake.RPS())

	svc.SetMaxOutstanding(0)
	assert.Equal(t, int32(0), fake.MaxOutstanding())
}

func TestGetRateReflectsPauseState(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Pause()
	running, _, _ := svc.GetRate()
	assert.False(t, running)

	svc.Resume()
	running, _, _ = svc.GetRate()
	assert.True(t, running)
}

func TestOverrideRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	svc.SetOverride("target_host", "10.0.0.5")
	assert.Equal(t, "10.0.0.5", svc.Override("target_host"))

	v, ok := svc.LookupOverride("target_host")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.5", v)

	assert.Equal(t, "", svc.Override("never_set"))
	_, ok = svc.LookupOverride("never_set")
	assert.False(t, ok)
}

func TestOverrideUint(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, uint32(30), svc.OverrideUint("timeout_s", 30))

	svc.SetOverride("timeout_s", "90")
	assert.Equal(t, uint32(90), svc.OverrideUint("timeout_s", 30))

	svc.SetOverride("timeout_s", "ninety")
	assert.Equal(t, uint32(30), svc.OverrideUint("timeout_s", 30))

	svc.SetOverride("timeout_s", "-1")
	assert.Equal(t, uint32(30), svc.OverrideUint("timeout_s", 30))
}

func TestConcurrentOverrideWritesLoseNoUpdates(t *testing.T) {
	svc, _ := newTestService(t)

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			svc.SetOverride(fmt.Sprintf("key_%d", n), fmt.Sprintf("%d", n))
		}(i)
	}
	wg.Wait()

	snap := svc.Overrides()
	require.Len(t, snap, writers)
	for i := 0; i < writers; i++ {
		assert.Equal(t, fmt.Sprintf("%d", i), snap[fmt.Sprintf("key_%d", i)])
	}
}

func TestCountersWithMetricsDisabled(t *testing.T) {
	svc, _ := newTestService(t)

	counters, err := svc.Counters()
	require.NoError(t, err)
	assert.NotNil(t, counters)
}
