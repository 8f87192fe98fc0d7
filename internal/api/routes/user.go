package routes

import (
	"Verdant/internal/api/handlers/user"
	"Verdant/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers user administration endpoints.
// These carry no auth middleware; access is expected to be gated upstream.
func RegisterUserRoutes(r chi.Router, service users.Service) {
	userHandler := user.NewHandler(service)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/all", userHandler.HandleList)
		r.Get("/{id}", userHandler.HandleGet)
		r.Put("/{id}", userHandler.HandleUpdate)
		r.Delete("/{id}", userHandler.HandleDelete)
	})
}
