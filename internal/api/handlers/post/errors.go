package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/posts"
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
	case errors.Is(err, posts.ErrAuthRequired):
		writeError(w, http.StatusUnauthorized, "Unauthorized",
			"Authentication required")

	case errors.Is(err, posts.ErrNotPostAuthor):
		writeError(w, http.StatusForbidden, "Forbidden",
			"You are not the author of this post")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound",
			"Post not found")

	case errors.Is(err, plants.ErrPlantNotFound):
		writeError(w, http.StatusNotFound, "PlantNotFound",
			"Plant not found")

	case errors.Is(err, plants.ErrNoImageAvailable):
		writeError(w, http.StatusBadRequest, "NoImageAvailable",
			"No image available for the plant or its versions")

	case errors.Is(err, posts.ErrLikedRequired):
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"Liked status is required")

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
