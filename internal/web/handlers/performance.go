package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type recordMarksRequest struct {
	StudentID int64   `json:"student_id"`
	Subject   string  `json:"subject"`
	Marks     float64 `json:"marks"`
	Date      string  `json:"date"`
}

// RecordMarks appends a performance entry for a student.
func (h *Handlers) RecordMarks(w http.ResponseWriter, r *http.Request) {
	var req recordMarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Subject == "" {
		respondError(w, http.StatusBadRequest, "subject is required")
		return
	}

	if err := h.db.RecordMarks(req.StudentID, req.Subject, req.Marks, req.Date); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]bool{"recorded": true})
}

// ListPerformance returns a student's performance history, newest first.
func (h *Handlers) ListPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	entries, err := h.db.ListPerformance(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}
