package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/windtunnel-io/gale/internal/telemetry"
)

// OverridesHandler serves the runtime configuration override endpoints.
type OverridesHandler struct {
	svc ControlService
}

// NewOverridesHandler creates an OverridesHandler backed by svc.
func NewOverridesHandler(svc ControlService) *OverridesHandler {
	return &OverridesHandler{svc: svc}
}

// SetOverrideRequest is the request body for PUT /api/v1/overrides/{key}.
type SetOverrideRequest struct {
	Value string `json:"value"`
}

// OverrideResponse is the response body for override endpoints. Present
// distinguishes a stored empty value from an absent key; reading an
// absent key is not an error.
type OverrideResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// List handles GET /api/v1/overrides.
func (h *OverridesHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, h.svc.Overrides())
}

// Get handles GET /api/v1/overrides/{key}.
//
// Absent keys answer 200 with an empty value rather than 404: the
// override store treats absence as "use the default", not as a failure.
func (h *OverridesHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		BadRequest(w, "Override key is required")
		return
	}

	value, present := h.svc.LookupOverride(key)
	WriteJSONOK(w, OverrideResponse{
		Key:     key,
		Value:   value,
		Present: present,
	})
}

// Set handles PUT /api/v1/overrides/{key}.
//
// Writing an existing key overwrites it. Overrides persist until the
// scheduler is paused, which clears the whole store.
func (h *OverridesHandler) Set(w http.ResponseWriter, r *http.Request) {
	_, span := telemetry.StartControlSpan(r.Context(), "set_override", r.RemoteAddr)
	defer span.End()

	key := chi.URLParam(r, "key")
	if key == "" {
		BadRequest(w, "Override key is required")
		return
	}
	span.SetAttributes(telemetry.OverrideKey(key))

	var req SetOverrideRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	h.svc.SetOverride(key, req.Value)
	WriteJSONOK(w, OverrideResponse{
		Key:     key,
		Value:   req.Value,
		Present: true,
	})
}
