package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/httpserver/handlers"
	"github.com/linkdeck/linkdeck/internal/httpserver/mw"
)

func init() { Register(registerSites) }

func registerSites(r chi.Router, d deps.Deps) {
	authed := r.With(mw.Authenticate(d.Sessions, d.Logger))

	// Public read: anonymous callers get the filtered projection.
	authed.Get("/api/sites", handlers.GetSites(d))

	// Whole-document write, session required.
	authed.With(mw.RequireAuth).Post("/admin/sites", handlers.UpdateSites(d))
}
