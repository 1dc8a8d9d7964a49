package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mindscape-app/backend/internal/handlers"
	"github.com/mindscape-app/backend/internal/middleware"
	"github.com/mindscape-app/backend/internal/services"
)

// SetupRoutes mounts the public auth routes and the token-protected journal
// routes.
func SetupRoutes(r chi.Router, auth *handlers.AuthHandler, journal *handlers.JournalHandler, tokens *services.TokenService) {
	r.Post("/api/auth/register", auth.Register)
	r.Post("/api/auth/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Post("/api/journal", journal.CreateEntry)
		r.Get("/api/journal", journal.ListEntries)
		r.Delete("/api/journal/{id}", journal.DeleteEntry)
	})
}
