package apiclient

import (
	"fmt"
	"net/http"
)

// APIError represents an RFC 7807 problem response from the control API.
type APIError struct {
	// StatusCode is the HTTP status of the response. It is populated by
	// the client, not decoded from the body.
	StatusCode int `json:"-"`

	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return e.Title
}

// IsNotFound returns true if this is a not found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsBadRequest returns true if the server rejected the request body.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}
