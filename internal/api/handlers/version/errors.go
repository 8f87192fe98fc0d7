package version

import (
	"errors"
	"log"
	"net/http"

	"Verdant/internal/api/handlers"
	"Verdant/internal/core/predictions"
	"Verdant/internal/core/versions"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, versions.ErrAuthRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")

	case errors.Is(err, versions.ErrVersionNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VersionNotFound", "Version not found")

	case errors.Is(err, versions.ErrPlantNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PlantNotFound", "Plant not found")

	case versions.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, predictions.ErrUnavailable):
		handlers.WriteError(w, http.StatusBadGateway, "PredictionUnavailable",
			"Disease model is unavailable; supply updatedHealthStatus explicitly")

	default:
		log.Printf("Unexpected error in version handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
