package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"where-is-my-table/internal/models"
)

// writeJSON writes a successful JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, code, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"code":       code,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// writeEngineError maps the engine's error taxonomy onto HTTP status
// codes: validation problems ask the user to correct input, conflicts
// ask the caller to refresh state, capacity is a distinct hard limit,
// and not-found means the entity is already gone.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error, requestID string) {
	var engineErr *models.Error
	if !errors.As(err, &engineErr) {
		h.logger.Error("internal_error", "Unclassified engine error", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", "internal", requestID)
		return
	}

	status := http.StatusInternalServerError
	switch engineErr.Kind {
	case models.KindValidation:
		status = http.StatusBadRequest
	case models.KindNotFound:
		status = http.StatusNotFound
	case models.KindConflict, models.KindCapacity:
		status = http.StatusConflict
	}

	h.writeErrorResponse(w, status, engineErr.Message, engineErr.Code, requestID)
}
