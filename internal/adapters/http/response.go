package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Wasim1024/spamDetectionApp/internal/core"
)

type apiError struct {
	Status    string `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:    "error",
		Code:      code,
		Message:   message,
		RequestID: requestIDFromContext(r.Context()),
	})
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, code, message := mapDomainError(err)
	writeError(w, r, statusCode, code, message)
}

func mapDomainError(err error) (int, string, string) {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input", err.Error()
	case errors.Is(err, core.ErrModelUnavailable):
		return http.StatusServiceUnavailable, "model_unavailable", "model is not loaded"
	case errors.Is(err, core.ErrInference):
		return http.StatusInternalServerError, "inference_error", "prediction failed"
	default:
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}
