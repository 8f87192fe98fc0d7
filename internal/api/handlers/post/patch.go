package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Verdant/internal/api/middleware"
	"Verdant/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// PatchHandler handles the liked-only partial update
type PatchHandler struct {
	service posts.Service
}

// NewPatchHandler creates a new patch handler
func NewPatchHandler(service posts.Service) *PatchHandler {
	return &PatchHandler{service: service}
}

// patchRequest distinguishes an absent liked field from an explicit false
type patchRequest struct {
	Liked *bool `json:"liked"`
}

// HandlePatch handles PATCH /api/posts/{id}
// Any authenticated caller may toggle liked on any post; an omitted liked
// field is rejected rather than treated as false.
func (h *PatchHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id must be an integer")
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	updated, err := h.service.UpdateLiked(r.Context(), callerID, id, req.Liked)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("Failed to encode post patch response: %v", err)
	}
}
