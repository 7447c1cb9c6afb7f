package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes payload as a JSON response.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError writes a generic JSON error body.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondErrorDetails writes an error body with an operator-facing details
// field. Details must never contain a stack trace.
func RespondErrorDetails(w http.ResponseWriter, status int, message, details string) {
	if details == "" {
		RespondError(w, status, message)
		return
	}
	RespondJSON(w, status, map[string]string{"error": message, "details": details})
}
