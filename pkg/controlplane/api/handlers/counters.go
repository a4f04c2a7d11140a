package handlers

import "net/http"

// CountersHandler serves the flat counters snapshot endpoint.
type CountersHandler struct {
	svc ControlService
}

// NewCountersHandler creates a CountersHandler backed by svc.
func NewCountersHandler(svc ControlService) *CountersHandler {
	return &CountersHandler{svc: svc}
}

// List handles GET /api/v1/counters.
//
// The snapshot flattens every exported counter and gauge into a
// name-to-integer map. When metrics collection is disabled the map is
// empty, not an error.
func (h *CountersHandler) List(w http.ResponseWriter, r *http.Request) {
	counters, err := h.svc.Counters()
	if err != nil {
		InternalServerError(w, "Failed to gather counters")
		return
	}
	WriteJSONOK(w, counters)
}
