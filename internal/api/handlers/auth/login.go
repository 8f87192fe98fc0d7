package auth

import (
	"encoding/json"
	"log"
	"net/http"

	authcore "Verdant/internal/auth"
	"Verdant/internal/core/users"
)

// LoginHandler verifies credentials and issues a bearer token
type LoginHandler struct {
	service  users.Service
	provider *authcore.Provider
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, provider *authcore.Provider) *LoginHandler {
	return &LoginHandler{
		service:  service,
		provider: provider,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// HandleLogin handles POST /api/auth/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "email and password are required")
		return
	}

	user, err := h.service.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.provider.IssueToken(user.ID, string(user.Role))
	if err != nil {
		log.Printf("Failed to issue token for user=%d: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(loginResponse{Token: token, User: user}); err != nil {
		log.Printf("Failed to encode login response: %v", err)
	}
}
