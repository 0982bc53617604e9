// Package httpx provides HTTP response utilities.
package httpx

import (
	"encoding/json"
	"net/http"
)

// MessagePayload is the generic single-message response body.
type MessagePayload struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Message sends a single-message JSON response.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessagePayload{Message: message})
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeBody decodes the request body into an untyped JSON object. It returns
// false when the body is absent or not a JSON object, in which case the caller
// should reject the request before validation.
func DecodeBody(r *http.Request) (map[string]any, bool) {
	if r.Body == nil {
		return nil, false
	}
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	return raw, true
}
