package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/httpserver/handlers"
)

func init() { Register(registerStatic) }

// Static assets are the catch-all: anything the API routes above do not
// claim falls through to the website (index.html, admin console, files).
func registerStatic(r chi.Router, d deps.Deps) {
	if h := handlers.Static(d); h != nil {
		r.NotFound(h)
	}
}
