package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/auth"
	"github.com/linkdeck/linkdeck/internal/logger"
)

func TestAuthenticateResolvesSessionCookie(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	sessions := auth.NewSessionStore(client, time.Hour)

	token, err := sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got bool
	h := Authenticate(sessions, logger.New("error", false))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IsAuthenticated(r.Context())
	}))

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{name: "no cookie", cookie: nil, want: false},
		{name: "stale token", cookie: &http.Cookie{Name: SessionCookie, Value: "deadbeef"}, want: false},
		{name: "live token", cookie: &http.Cookie{Name: SessionCookie, Value: token}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("IsAuthenticated = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/sites", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous request = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/sites", nil)
	req = req.WithContext(ContextWithAuth(req.Context(), true))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("authenticated request = %d, want 204", rec.Code)
	}
}
