package routes

import (
	"Verdant/internal/api/handlers/post"
	"Verdant/internal/api/middleware"
	"Verdant/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the social feed endpoints on the router.
// Every post endpoint requires authentication, reads included.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	patchHandler := post.NewPatchHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Route("/api/posts", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/", listHandler.HandleList)
		r.Post("/", createHandler.HandleCreate)
		r.Get("/{id}", getHandler.HandleGet)
		r.Put("/{id}", updateHandler.HandleUpdate)
		r.Patch("/{id}", patchHandler.HandlePatch)
		r.Delete("/{id}", deleteHandler.HandleDelete)
	})
}
