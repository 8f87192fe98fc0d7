package plant

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/predictions"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, plants.ErrAuthRequired):
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")

	case errors.Is(err, plants.ErrPlantNotFound):
		writeError(w, http.StatusNotFound, "PlantNotFound", "Plant not found")

	case plants.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, predictions.ErrUnavailable):
		writeError(w, http.StatusBadGateway, "PredictionUnavailable",
			"Disease model is unavailable")

	default:
		log.Printf("Unexpected error in plant handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
