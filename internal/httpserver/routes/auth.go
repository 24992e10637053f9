package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/httpserver/handlers"
	"github.com/linkdeck/linkdeck/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	// Login is brute-force bait, so it gets its own per-IP token bucket.
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.LoginRateBurst,
		RefillPerIPPerMin: d.LoginRatePerMin,
		MaxEntries:        10_000,
		TrustProxy:        d.TrustProxy,
	})).Post("/login", handlers.Login(d))

	r.Post("/logout", handlers.Logout(d))
}
