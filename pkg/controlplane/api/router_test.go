package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windtunnel-io/gale/pkg/controlplane"
	"github.com/windtunnel-io/gale/pkg/controlplane/api"
	"github.com/windtunnel-io/gale/pkg/controlplane/status"
	"github.com/windtunnel-io/gale/pkg/scheduler"
	"github.com/windtunnel-io/gale/pkg/scheduler/schedtest"
)

func newTestRouter(t *testing.T) (http.Handler, *controlplane.Service, *schedtest.Fake) {
	t.Helper()
	fake := schedtest.NewFake()
	svc := controlplane.NewService(fake, nil)
	return api.NewRouter(svc), svc, fake
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestGetStatus(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status     int    `json:"status"`
		StatusName string `json:"status_name"`
		AliveSince int64  `json:"alive_since"`
		InstanceID string `json:"instance_id"`
		Phase      string `json:"phase"`
	}
	decodeBody(t, rec, &resp)

	assert.Equal(t, int(status.Starting), resp.Status)
	assert.Equal(t, "STARTING", resp.StatusName)
	assert.Greater(t, resp.AliveSince, int64(0))
	assert.Equal(t, svc.InstanceID(), resp.InstanceID)
	assert.Equal(t, scheduler.UnknownPhase, resp.Phase)

	svc.SetStatus(status.Alive)
	rec = doRequest(t, router, http.MethodGet, "/api/v1/status", "")
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ALIVE", resp.StatusName)
}

func TestPauseClearsOverrides(t *testing.T) {
	router, svc, fake := newTestRouter(t)

	svc.SetOverride("latency_budget_ms", "250")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/scheduler/pause", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Running bool `json:"running"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.False(t, resp.Running)
	assert.False(t, fake.IsRunning())
	assert.Empty(t, svc.Overrides())

	// Pausing an already-paused scheduler still reports success.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/scheduler/pause", "")
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
}

func TestResumeWithoutBody(t *testing.T) {
	router, _, fake := newTestRouter(t)
	fake.Pause()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/scheduler/resume", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Running bool   `json:"running"`
		Phase   string `json:"phase"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.True(t, resp.Running)
	// A bare resume never touches the phase.
	assert.Equal(t, scheduler.UnknownPhase, resp.Phase)
}

func TestResumeWithPhase(t *testing.T) {
	router, _, fake := newTestRouter(t)
	fake.Pause()
	fake.SetPhase("warmup")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/scheduler/resume",
		`{"phase_name":"steady_state"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Phase   string `json:"phase"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "steady_state", resp.Phase)
	assert.True(t, fake.IsRunning())
}

func TestResumePhaseDefaults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty phase name", body: `{"phase_name":""}`},
		{name: "missing phase field", body: `{}`},
		{name: "malformed json", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, fake := newTestRouter(t)
			fake.Pause()
			fake.SetPhase("warmup")

			rec := doRequest(t, router, http.MethodPost, "/api/v1/scheduler/resume", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, "phase-setting resume never fails")

			var resp struct {
				Success bool   `json:"success"`
				Phase   string `json:"phase"`
			}
			decodeBody(t, rec, &resp)
			assert.True(t, resp.Success)
			assert.Equal(t, scheduler.UnknownPhase, resp.Phase)
			assert.True(t, fake.IsRunning())
		})
	}
}

func TestSetRateThenGetRate(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/scheduler/rate", `{"rps":500}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/scheduler/rate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Running        bool  `json:"running"`
		RPS            int32 `json:"rps"`
		MaxOutstanding int32 `json:"max_outstanding"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Running)
	assert.Equal(t, int32(500), resp.RPS)
	assert.Equal(t, int32(100), resp.MaxOutstanding)
}

func TestSetMaxOutstanding(t *testing.T) {
	router, _, fake := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/scheduler/max-outstanding",
		`{"max_outstanding":64}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(64), fake.MaxOutstanding())
}

func TestSetRateRejectsMalformedBody(t *testing.T) {
	router, _, fake := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/scheduler/rate", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, int32(10), fake.RPS(), "rate must be untouched on a bad request")
}

func TestOverrideRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/overrides/target_host",
		`{"value":"10.0.0.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/overrides/target_host", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Key     string `json:"key"`
		Value   string `json:"value"`
		Present bool   `json:"present"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "target_host", resp.Key)
	assert.Equal(t, "10.0.0.5", resp.Value)
	assert.True(t, resp.Present)
}

func TestGetAbsentOverrideIsNotAnError(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/overrides/never_set", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value   string `json:"value"`
		Present bool   `json:"present"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "", resp.Value)
	assert.False(t, resp.Present)
}

func TestListOverrides(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.SetOverride("a", "1")
	svc.SetOverride("b", "2")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/overrides", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, resp)
}

func TestCounters(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/counters", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int64
	decodeBody(t, rec, &resp)
	assert.NotNil(t, resp)
}

func TestHealthProbes(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Not ready while starting.
	rec = doRequest(t, router, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	svc.SetStatus(status.Alive)
	rec = doRequest(t, router, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Liveness stays healthy while stopping; readiness does not.
	svc.SetStatus(status.Stopping)
	rec = doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRootRedirectsToHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/health", rec.Header().Get("Location"))
}

func TestUnknownRouteIs404(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
