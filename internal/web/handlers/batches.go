package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/classdesk/classdesk/internal/database"
)

// ListBatches returns every batch ordered by name.
func (h *Handlers) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.db.ListBatches()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"batches": batches,
		"count":   len(batches),
	})
}

// UpsertBatch inserts or overwrites the batch keyed by its name.
func (h *Handlers) UpsertBatch(w http.ResponseWriter, r *http.Request) {
	var batch database.Batch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if batch.Name == "" {
		respondError(w, http.StatusBadRequest, "batch name is required")
		return
	}

	if err := h.db.UpsertBatch(batch.Name, batch.Subject, batch.Time); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, batch)
}

// DeleteBatch removes a batch row. Students keep their batch label.
func (h *Handlers) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "batch name is required")
		return
	}

	if err := h.db.DeleteBatch(name); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
