package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Verdant/internal/core/posts"
)

// ListHandler handles the post feed
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Returns all posts newest-first, joined with plant and author. Without
// limit/offset query params the result set is unbounded.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	opts := posts.ListOptions{}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be a non-negative integer")
			return
		}
		opts.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "offset must be a non-negative integer")
			return
		}
		opts.Offset = n
	}

	views, err := h.service.List(r.Context(), opts)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}
