package apiclient

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windtunnel-io/gale/pkg/controlplane"
	"github.com/windtunnel-io/gale/pkg/controlplane/api"
	"github.com/windtunnel-io/gale/pkg/scheduler"
	"github.com/windtunnel-io/gale/pkg/scheduler/schedtest"
)

func newTestClient(t *testing.T) (*Client, *controlplane.Service, *schedtest.Fake) {
	t.Helper()
	fake := schedtest.NewFake()
	svc := controlplane.NewService(fake, nil)
	server := httptest.NewServer(api.NewRouter(svc))
	t.Cleanup(server.Close)
	return New(server.URL), svc, fake
}

func TestGetStatus(t *testing.T) {
	client, svc, _ := newTestClient(t)

	st, err := client.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "STARTING", st.StatusName)
	assert.Equal(t, svc.InstanceID(), st.InstanceID)
	assert.Greater(t, st.AliveSince, int64(0))
	assert.Equal(t, scheduler.UnknownPhase, st.Phase)
}

func TestPauseAndResume(t *testing.T) {
	client, svc, fake := newTestClient(t)
	svc.SetOverride("workers", "8")

	state, err := client.Pause()
	require.NoError(t, err)
	assert.True(t, state.Success)
	assert.False(t, state.Running)
	assert.False(t, fake.IsRunning())
	assert.Empty(t, svc.Overrides(), "pause clears overrides on the worker")

	state, err = client.Resume()
	require.NoError(t, err)
	assert.True(t, state.Success)
	assert.True(t, state.Running)
	assert.Equal(t, scheduler.UnknownPhase, state.Phase)
}

func TestResumeWithPhase(t *testing.T) {
	client, _, fake := newTestClient(t)
	fake.Pause()

	state, err := client.ResumeWithPhase("steady_state")
	require.NoError(t, err)
	assert.True(t, state.Success)
	assert.Equal(t, "steady_state", state.Phase)

	// An empty phase maps to the unknown-phase label, never an error.
	state, err = client.ResumeWithPhase("")
	require.NoError(t, err)
	assert.True(t, state.Success)
	assert.Equal(t, scheduler.UnknownPhase, state.Phase)
}

func TestRateRoundTrip(t *testing.T) {
	client, _, _ := newTestClient(t)

	rate, err := client.SetRate(500)
	require.NoError(t, err)
	assert.Equal(t, int32(500), rate.RPS)

	rate, err = client.SetMaxOutstanding(64)
	require.NoError(t, err)
	assert.Equal(t, int32(64), rate.MaxOutstanding)

	rate, err = client.GetRate()
	require.NoError(t, err)
	assert.True(t, rate.Running)
	assert.Equal(t, int32(500), rate.RPS)
	assert.Equal(t, int32(64), rate.MaxOutstanding)
}

func TestOverrides(t *testing.T) {
	client, _, _ := newTestClient(t)

	set, err := client.SetOverride("target_host", "10.0.0.5")
	require.NoError(t, err)
	assert.True(t, set.Present)

	got, err := client.GetOverride("target_host")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", got.Value)
	assert.True(t, got.Present)

	absent, err := client.GetOverride("never_set")
	require.NoError(t, err)
	assert.False(t, absent.Present)
	assert.Equal(t, "", absent.Value)

	all, err := client.ListOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"target_host": "10.0.0.5"}, all)
}

func TestGetCounters(t *testing.T) {
	client, _, _ := newTestClient(t)

	counters, err := client.GetCounters()
	require.NoError(t, err)
	assert.NotNil(t, counters)
}

func TestProblemResponsesBecomeAPIErrors(t *testing.T) {
	client, _, _ := newTestClient(t)

	var rate Rate
	reqErr := client.put("/api/v1/scheduler/rate", map[string]string{"rps": "fast"}, &rate)
	require.Error(t, reqErr)

	apiErr, ok := reqErr.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsBadRequest())
	assert.Equal(t, "Bad Request", apiErr.Title)
}
