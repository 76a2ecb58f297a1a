package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Message string `json:"message"`
}

// Generic body for unexpected failures. Details stay in the server log.
const internalErrorMessage = "An error occurred. Please try again later."

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Message: message})
}
