package routes

import (
	"Verdant/internal/api/handlers/auth"
	authcore "Verdant/internal/auth"
	"Verdant/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers account registration and login endpoints.
// Both endpoints are public; login is where tokens come from.
func RegisterAuthRoutes(r chi.Router, service users.Service, provider *authcore.Provider) {
	registerHandler := auth.NewRegisterHandler(service)
	loginHandler := auth.NewLoginHandler(service, provider)

	r.Post("/api/auth/register", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)
}
