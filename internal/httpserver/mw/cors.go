package mw

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns a CORS middleware for the given allowed origins.
// An empty list means same-origin only, so no CORS headers are emitted.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler
}
