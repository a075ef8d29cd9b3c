package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// errorResponse is the JSON error envelope every failure returns.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, cause error) {
	resp := errorResponse{Error: message}
	if cause != nil {
		resp.Detail = cause.Error()
	}
	writeJSON(w, status, resp)
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	return strings.Contains(err.Error(), "invalid role query") || strings.Contains(err.Error(), "role query is required")
}
