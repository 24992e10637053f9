package mw

import (
	"context"
	"net/http"

	"github.com/linkdeck/linkdeck/internal/auth"
	"github.com/linkdeck/linkdeck/internal/logger"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "linkdeck_session"

type ctxKey int

const authKey ctxKey = iota

// Authenticate resolves the session cookie against the session store and
// stores the result in the request context. It never rejects a request:
// anonymous requests simply flow through unauthenticated so that read
// endpoints can serve the public projection.
func Authenticate(sessions *auth.SessionStore, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authed := false
			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
				ok, err := sessions.Validate(r.Context(), c.Value)
				if err != nil {
					log.Warn("session validation failed", logger.Error(err))
				}
				authed = ok
			}
			next.ServeHTTP(w, r.WithContext(ContextWithAuth(r.Context(), authed)))
		})
	}
}

// RequireAuth rejects unauthenticated requests with a 401 JSON body.
// It must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ContextWithAuth marks ctx with the authentication state.
func ContextWithAuth(ctx context.Context, authenticated bool) context.Context {
	return context.WithValue(ctx, authKey, authenticated)
}

// IsAuthenticated reports whether the request carried a valid session.
func IsAuthenticated(ctx context.Context) bool {
	v, _ := ctx.Value(authKey).(bool)
	return v
}
