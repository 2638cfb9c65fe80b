package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/classdesk/classdesk/internal/database"
)

type markAttendanceRequest struct {
	StudentID int64  `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// MarkAttendance records a day's status, replacing any earlier mark for
// the same student and date.
func (h *Handlers) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != database.StatusPresent && req.Status != database.StatusAbsent {
		respondError(w, http.StatusBadRequest, "status must be Present or Absent")
		return
	}
	if req.Date == "" {
		respondError(w, http.StatusBadRequest, "date is required")
		return
	}

	if err := h.db.MarkAttendance(req.StudentID, req.Date, req.Status); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"marked": true})
}

// GetAttendance returns a student's attendance history, newest first.
func (h *Handlers) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	records, err := h.db.GetAttendance(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	pct, err := h.db.AttendancePercentage(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"records":    records,
		"percentage": pct,
	})
}
