package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/llm"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteDomainError maps pipeline errors onto HTTP statuses:
// missing entities 404, unusable input 422, upstream model failures 502,
// anything else 500. fallbackCode labels the 500 case.
func WriteDomainError(w http.ResponseWriter, logger *zap.Logger, err error, fallbackCode string) {
	var writeErr error

	var llmErr *llm.Error
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		writeErr = ErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, apperrors.ErrNoContent):
		writeErr = ErrorResponse(w, http.StatusUnprocessableEntity, "no_content", err.Error())
	case errors.Is(err, apperrors.ErrInvalidProfileData),
		errors.Is(err, apperrors.ErrInvalidEvaluationData):
		writeErr = ErrorResponse(w, http.StatusBadGateway, "invalid_model_output", err.Error())
	case errors.As(err, &llmErr):
		writeErr = ErrorResponse(w, http.StatusBadGateway, "llm_error", llmErr.Message)
	default:
		writeErr = ErrorResponse(w, http.StatusInternalServerError, fallbackCode, err.Error())
	}

	if writeErr != nil {
		logger.Error("Failed to write error response", zap.Error(writeErr))
	}
}
