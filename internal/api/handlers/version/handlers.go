package version

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Verdant/internal/api/handlers"
	"Verdant/internal/api/middleware"
	"Verdant/internal/core/versions"

	"github.com/go-chi/chi/v5"
)

// Handler handles version requests
type Handler struct {
	service versions.Service
}

// NewHandler creates a new version handler
func NewHandler(service versions.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /api/plants/{plantID}/versions
// When updatedHealthStatus is omitted and an image is supplied, the status
// comes from the disease model.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	plantID, err := strconv.ParseInt(chi.URLParam(r, "plantID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "plant id must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	var req versions.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.PlantID = plantID

	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	created, err := h.service.Create(r.Context(), callerID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("Failed to encode version creation response: %v", err)
	}
}

// HandleList handles GET /api/plants/{plantID}/versions
// Returns the plant's versions, most recent first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	plantID, err := strconv.ParseInt(chi.URLParam(r, "plantID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "plant id must be an integer")
		return
	}

	result, err := h.service.ListByPlant(r.Context(), plantID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode version list response: %v", err)
	}
}

// HandleDelete handles DELETE /api/versions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "version id must be an integer")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
