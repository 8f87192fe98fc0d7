package plant

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"Verdant/internal/api/middleware"
	"Verdant/internal/core/plants"
	"Verdant/internal/core/predictions"

	"github.com/go-chi/chi/v5"
)

// maxPlantBody caps plant payloads; images travel inline as base64
const maxPlantBody = 10 * 1024 * 1024

// Handler handles plant CRUD requests and the prediction preview
type Handler struct {
	service   plants.Service
	predictor predictions.Client
}

// NewHandler creates a new plant handler.
// predictor may be nil; the predict endpoint then reports the model as down.
func NewHandler(service plants.Service, predictor predictions.Client) *Handler {
	return &Handler{
		service:   service,
		predictor: predictor,
	}
}

// HandleList handles GET /api/plants
// Returns the authenticated caller's plants with their version history.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	result, err := h.service.List(r.Context(), callerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode plant list response: %v", err)
	}
}

// HandleGet handles GET /api/plants/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "plant id must be an integer")
		return
	}

	plant, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plant); err != nil {
		log.Printf("Failed to encode plant response: %v", err)
	}
}

// HandleCreate handles POST /api/plants
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPlantBody)

	var req plants.CreatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	callerID := middleware.GetUserID(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
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
		log.Printf("Failed to encode plant creation response: %v", err)
	}
}

// HandleUpdate handles PUT /api/plants/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "plant id must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPlantBody)

	var req plants.UpdatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("Failed to encode plant update response: %v", err)
	}
}

// HandlePredict handles POST /api/plants/predict
// Classifies an uploaded image without creating anything, so a user can
// preview the model's verdict before registering a plant or version. The
// image travels as a multipart "file" part, mirroring what the model
// service itself accepts.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if h.predictor == nil {
		writeError(w, http.StatusBadGateway, "PredictionUnavailable",
			"Disease model is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPlantBody)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "No file uploaded")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("Failed to close uploaded file: %v", err)
		}
	}()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Failed to read uploaded file")
		return
	}

	prediction, err := h.predictor.Predict(r.Context(), image)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(prediction); err != nil {
		log.Printf("Failed to encode prediction response: %v", err)
	}
}

// HandleDelete handles DELETE /api/plants/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "plant id must be an integer")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
