package handlers

import "net/http"

// ListHomework returns a batch's homework ordered by due date.
func (h *Handlers) ListHomework(w http.ResponseWriter, r *http.Request) {
	batch := r.URL.Query().Get("batch")
	if batch == "" {
		respondError(w, http.StatusBadRequest, "batch is required")
		return
	}

	homework, err := h.db.ListHomeworkFor(batch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"homework": homework,
		"count":    len(homework),
	})
}
