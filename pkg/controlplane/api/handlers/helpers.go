package handlers

import (
	"encoding/json"
	"net/http"
)

// decodeJSONBody decodes the request body into v, writing a 400 problem
// response on failure. Returns true if decoding succeeded.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
