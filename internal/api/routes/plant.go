package routes

import (
	"Verdant/internal/api/handlers/plant"
	"Verdant/internal/api/handlers/version"
	"Verdant/internal/api/middleware"
	"Verdant/internal/core/plants"
	"Verdant/internal/core/predictions"
	"Verdant/internal/core/versions"

	"github.com/go-chi/chi/v5"
)

// RegisterPlantRoutes registers plant and plant-version endpoints.
// Versions hang off their plant for creation and listing; deletion is
// addressed by version id directly.
func RegisterPlantRoutes(r chi.Router, plantService plants.Service, versionService versions.Service, predictor predictions.Client, authMiddleware *middleware.AuthMiddleware) {
	plantHandler := plant.NewHandler(plantService, predictor)
	versionHandler := version.NewHandler(versionService)

	r.Route("/api/plants", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/", plantHandler.HandleList)
		r.Post("/", plantHandler.HandleCreate)
		r.Post("/predict", plantHandler.HandlePredict)
		r.Get("/{id}", plantHandler.HandleGet)
		r.Put("/{id}", plantHandler.HandleUpdate)
		r.Delete("/{id}", plantHandler.HandleDelete)

		r.Get("/{plantID}/versions", versionHandler.HandleList)
		r.Post("/{plantID}/versions", versionHandler.HandleCreate)
	})

	r.With(authMiddleware.RequireAuth).Delete("/api/versions/{id}", versionHandler.HandleDelete)
}
