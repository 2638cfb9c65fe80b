// Package handlers exposes the data layer's operations as a JSON API for
// UI collaborators. Handlers translate layer results one-to-one: absent
// rows become 404, constraint conflicts become 409 with a message the UI
// can show verbatim.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/classdesk/classdesk/internal/auth"
	"github.com/classdesk/classdesk/internal/database"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	db          *database.DB
	authService *auth.Service
}

// New creates a new Handlers instance
func New(db *database.DB, authService *auth.Service) *Handlers {
	return &Handlers{
		db:          db,
		authService: authService,
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps a data layer failure onto an HTTP status.
func respondStoreError(w http.ResponseWriter, err error) {
	if database.IsConstraintViolation(err) {
		respondError(w, http.StatusConflict, "a record with that key already exists")
		return
	}
	log.Error().Err(err).Msg("Store operation failed")
	respondError(w, http.StatusInternalServerError, "storage error")
}
