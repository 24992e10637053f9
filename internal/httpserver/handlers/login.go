package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkdeck/linkdeck/internal/auth"
	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/httpserver/mw"
	"github.com/linkdeck/linkdeck/internal/logger"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Login verifies the operator password and mints a session token
// delivered in an HttpOnly cookie. The token itself never appears in
// the response body.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Error: "Invalid JSON body"})
			return
		}

		if err := auth.VerifyPassword(d.AdminPasswordHash, req.Password); err != nil {
			if !errors.Is(err, auth.ErrInvalidPassword) {
				d.Logger.Error("password verification failed", logger.Error(err))
			}
			writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Error: "Invalid password"})
			return
		}

		token, err := d.Sessions.Create(r.Context())
		if err != nil {
			d.Logger.Error("failed to create session", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: "Failed to create session"})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(d.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   d.SecureCookies,
			SameSite: http.SameSiteStrictMode,
		})

		writeJSON(w, http.StatusOK, loginResponse{Success: true, Message: "Login successful"})
	}
}

// Logout revokes the current session token and expires the cookie.
// Always succeeds, even without a live session.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(mw.SessionCookie); err == nil && c.Value != "" {
			if err := d.Sessions.Revoke(r.Context(), c.Value); err != nil {
				d.Logger.Warn("failed to revoke session", logger.Error(err))
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   d.SecureCookies,
			SameSite: http.SameSiteStrictMode,
		})

		writeJSON(w, http.StatusOK, loginResponse{Success: true, Message: "Logged out"})
	}
}
