package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type addTimetableRequest struct {
	Batch     string `json:"batch"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`
	Subject   string `json:"subject"`
	TeacherID *int64 `json:"teacher_id"`
}

// ListTimetable returns timetable entries, optionally filtered by batch.
func (h *Handlers) ListTimetable(w http.ResponseWriter, r *http.Request) {
	entries, err := h.db.ListTimetable(r.URL.Query().Get("batch"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

// NextClasses returns a batch's upcoming classes ordered from today's
// weekday forward.
func (h *Handlers) NextClasses(w http.ResponseWriter, r *http.Request) {
	batch := r.URL.Query().Get("batch")
	if batch == "" {
		respondError(w, http.StatusBadRequest, "batch is required")
		return
	}

	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.db.NextClassesFor(batch, limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

// AddTimetableEntry appends an entry and returns the new id.
func (h *Handlers) AddTimetableEntry(w http.ResponseWriter, r *http.Request) {
	var req addTimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Batch == "" || req.Day == "" || req.TimeSlot == "" {
		respondError(w, http.StatusBadRequest, "batch, day and time_slot are required")
		return
	}

	id, err := h.db.AddTimetableEntry(req.Batch, req.Day, req.TimeSlot, req.Subject, req.TeacherID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// DeleteTimetableEntry removes one entry by id.
func (h *Handlers) DeleteTimetableEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.db.DeleteTimetableEntry(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ClearTimetableForBatch deletes every entry for the named batch. Used
// together with import to replace a batch's schedule.
func (h *Handlers) ClearTimetableForBatch(w http.ResponseWriter, r *http.Request) {
	batch := chi.URLParam(r, "batch")
	if batch == "" {
		respondError(w, http.StatusBadRequest, "batch is required")
		return
	}

	if err := h.db.ClearTimetableForBatch(batch); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}
