// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// Body is the response shape of the upload API.
type Body struct {
	Message string `json:"message" example:"File upload successful"`
	Key     string `json:"key,omitempty" example:"3f1c1f7e-8f6e-4c63-9d0b-5b2b3c6f2a10"`
}

// Status is the response shape of the health endpoint.
type Status struct {
	Status string `json:"status" example:"ok"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with payload.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Message writes {"message": message} with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Body{Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// InternalError writes a 500 response. message must not carry the cause.
func InternalError(w http.ResponseWriter, message string) {
	Message(w, http.StatusInternalServerError, message)
}

// ServiceUnavailable writes a 503 response.
func ServiceUnavailable(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusServiceUnavailable, payload)
}
