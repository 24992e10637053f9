package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/store"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Categories *int   `json:"categories,omitempty"`
	Sites      *int   `json:"sites,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the health of the pieces behind the API: the session
// backend (Redis) and the document store, with document counts when a
// document is present.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		components := map[string]componentStatus{
			"sessions": checkRedis(d),
			"document": checkDocument(d),
		}

		response := infraResponse{
			Status:     overallStatus(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func overallStatus(components map[string]componentStatus) string {
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	if doc, exists := components["document"]; exists && doc.Mode == "empty" {
		return "empty"
	}
	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: false, Error: "client not initialized"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Error: "unreachable"}
	}
	return componentStatus{OK: true}
}

func checkDocument(d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	doc, err := d.Store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return componentStatus{OK: true, Mode: "empty"}
		}
		return componentStatus{OK: false, Error: "unreachable"}
	}

	categories := len(doc)
	sites := 0
	for _, c := range doc {
		sites += len(c.Sites)
	}
	return componentStatus{OK: true, Categories: &categories, Sites: &sites}
}
