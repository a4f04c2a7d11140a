package handlers

import (
	"net/http"
	"time"
)

// StatusHandler serves the service status endpoint.
type StatusHandler struct {
	svc ControlService
}

// NewStatusHandler creates a StatusHandler backed by svc.
func NewStatusHandler(svc ControlService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// StatusResponse is the response body for GET /api/v1/status.
type StatusResponse struct {
	Status        int    `json:"status"`
	StatusName    string `json:"status_name"`
	AliveSince    int64  `json:"alive_since"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	InstanceID    string `json:"instance_id"`
	Phase         string `json:"phase"`
}

// Get handles GET /api/v1/status.
//
// The numeric status code follows the standard fb303-style vocabulary
// so existing health tooling can interpret it directly.
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	aliveSince := h.svc.AliveSince()
	WriteJSONOK(w, StatusResponse{
		Status:        int(h.svc.Status()),
		StatusName:    h.svc.StatusDetails(),
		AliveSince:    aliveSince,
		UptimeSeconds: time.Now().Unix() - aliveSince,
		InstanceID:    h.svc.InstanceID(),
		Phase:         h.svc.Phase(),
	})
}
