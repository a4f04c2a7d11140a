package handlers

import (
	"net/http"

	"github.com/windtunnel-io/gale/pkg/controlplane/status"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	svc ControlService
}

// NewHealthHandler creates a HealthHandler backed by svc.
func NewHealthHandler(svc ControlService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Liveness handles GET /health.
//
// Liveness only proves the process is serving HTTP; it answers healthy
// regardless of the service status so orchestrators do not restart a
// worker that is deliberately stopping.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthyResponse(map[string]string{
		"instance_id": h.svc.InstanceID(),
	}))
}

// Readiness handles GET /health/ready.
//
// The worker is ready only while ALIVE. Any other status answers 503
// with the status name so rollout tooling can tell a starting worker
// from a stopping one.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Status()
	data := map[string]string{
		"service_status": st.String(),
		"instance_id":    h.svc.InstanceID(),
	}

	if st != status.Alive {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponseWithData(data))
		return
	}
	writeJSON(w, http.StatusOK, healthyResponse(data))
}
