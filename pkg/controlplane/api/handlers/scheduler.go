package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/internal/telemetry"
)

// SchedulerHandler serves the scheduler control endpoints: pause,
// resume, rate and concurrency tuning.
type SchedulerHandler struct {
	svc ControlService
}

// NewSchedulerHandler creates a SchedulerHandler backed by svc.
func NewSchedulerHandler(svc ControlService) *SchedulerHandler {
	return &SchedulerHandler{svc: svc}
}

// ResumeRequest is the optional request body for POST
// /api/v1/scheduler/resume. When present, the named phase is assigned
// before the scheduler restarts.
type ResumeRequest struct {
	PhaseName string `json:"phase_name"`
}

// SchedulerStateResponse reports the scheduler's running state after a
// pause or resume.
type SchedulerStateResponse struct {
	Success bool   `json:"success"`
	Running bool   `json:"running"`
	Phase   string `json:"phase"`
}

// RateRequest is the request body for PUT /api/v1/scheduler/rate.
type RateRequest struct {
	RPS int32 `json:"rps"`
}

// MaxOutstandingRequest is the request body for PUT
// /api/v1/scheduler/max-outstanding.
type MaxOutstandingRequest struct {
	MaxOutstanding int32 `json:"max_outstanding"`
}

// RateResponse is the response body for GET /api/v1/scheduler/rate.
type RateResponse struct {
	Running        bool  `json:"running"`
	RPS            int32 `json:"rps"`
	MaxOutstanding int32 `json:"max_outstanding"`
}

// Pause handles POST /api/v1/scheduler/pause.
//
// Pausing stops the scheduler and clears every runtime configuration
// override. It always succeeds, including when already paused.
func (h *SchedulerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	_, span := telemetry.StartControlSpan(r.Context(), "pause", r.RemoteAddr)
	defer span.End()

	ok := h.svc.Pause()
	running, _, _ := h.svc.GetRate()
	span.SetAttributes(telemetry.Running(running))
	WriteJSONOK(w, SchedulerStateResponse{
		Success: ok,
		Running: running,
		Phase:   h.svc.Phase(),
	})
}

// Resume handles POST /api/v1/scheduler/resume.
//
// With an empty body the scheduler restarts and the response reports
// whether it is running afterwards. With a JSON body the named phase is
// assigned first; a missing or unreadable phase name maps to the
// unknown-phase label, and the operation always reports success.
func (h *SchedulerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	_, span := telemetry.StartControlSpan(r.Context(), "resume", r.RemoteAddr)
	defer span.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		BadRequest(w, "Failed to read request body")
		return
	}

	var ok bool
	if len(body) == 0 {
		ok = h.svc.Resume()
	} else {
		var req ResumeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Warn("Unreadable resume body, defaulting phase", "error", err)
		}
		ok = h.svc.ResumeWithPhase(req.PhaseName)
	}

	running, _, _ := h.svc.GetRate()
	span.SetAttributes(telemetry.Running(running), telemetry.Phase(h.svc.Phase()))
	WriteJSONOK(w, SchedulerStateResponse{
		Success: ok,
		Running: running,
		Phase:   h.svc.Phase(),
	})
}

// SetRate handles PUT /api/v1/scheduler/rate.
//
// The target rate is forwarded to the scheduler unchecked; rate policy
// belongs to the scheduler, not this endpoint.
func (h *SchedulerHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	_, span := telemetry.StartControlSpan(r.Context(), "set_rps", r.RemoteAddr)
	defer span.End()

	var req RateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	span.SetAttributes(telemetry.RPS(req.RPS))
	h.svc.SetRPS(req.RPS)
	h.writeRate(w)
}

// SetMaxOutstanding handles PUT /api/v1/scheduler/max-outstanding.
func (h *SchedulerHandler) SetMaxOutstanding(w http.ResponseWriter, r *http.Request) {
	_, span := telemetry.StartControlSpan(r.Context(), "set_max_outstanding", r.RemoteAddr)
	defer span.End()

	var req MaxOutstandingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	span.SetAttributes(telemetry.MaxOutstanding(req.MaxOutstanding))
	h.svc.SetMaxOutstanding(req.MaxOutstanding)
	h.writeRate(w)
}

// GetRate handles GET /api/v1/scheduler/rate.
func (h *SchedulerHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	h.writeRate(w)
}

func (h *SchedulerHandler) writeRate(w http.ResponseWriter) {
	running, rps, maxOut := h.svc.GetRate()
	WriteJSONOK(w, RateResponse{
		Running:        running,
		RPS:            rps,
		MaxOutstanding: maxOut,
	})
}
