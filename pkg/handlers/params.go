package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParseBrandID extracts and validates the brand ID from the request path.
// Returns the parsed UUID and true on success, or uuid.Nil and false on error
// (after writing an error response).
// Expects path parameter: brand_id
func ParseBrandID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uuid.UUID, bool) {
	idStr := r.PathValue("brand_id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_brand_id", "Invalid brand ID format"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return uuid.Nil, false
	}
	return id, true
}

// ParseVersion extracts and validates the profile version from the request
// path. Versions are positive integers starting at 1.
// Expects path parameter: version
func ParseVersion(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	versionStr := r.PathValue("version")
	version, err := strconv.Atoi(versionStr)
	if err != nil || version < 1 {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_version", "Version must be a positive integer"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return version, true
}
