package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/editor"
	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/httpserver/mw"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/store"
)

type updateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// GetSites serves the directory document. Anonymous callers get the
// public projection with private sites removed, authenticated callers
// get the full document.
func GetSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authed := mw.IsAuthenticated(r.Context())

		doc, err := d.Directory.GetView(r.Context(), authed)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "Data file not found"})
				return
			}
			d.Logger.Error("failed to load directory", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load data"})
			return
		}
		if doc == nil {
			doc = domain.Document{}
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, doc)
	}
}

// UpdateSites replaces the whole directory document. The incoming
// document is replayed through an edit session so that every commit
// goes through the same trimming and logo normalization regardless of
// the client.
func UpdateSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc domain.Document
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<20))
		if err := dec.Decode(&doc); err != nil {
			writeJSON(w, http.StatusBadRequest, updateResponse{
				Success: false,
				Error:   "Invalid JSON body",
				Details: err.Error(),
			})
			return
		}

		snapshot := editor.NewSession(doc).Snapshot()

		if err := d.Directory.Commit(r.Context(), snapshot); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, updateResponse{
					Success: false,
					Error:   verr.Error(),
				})
				return
			}
			d.Logger.Error("failed to persist directory", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, updateResponse{
				Success: false,
				Error:   "Failed to update data",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, updateResponse{
			Success: true,
			Message: "Data updated successfully.",
		})
	}
}
