package handlers

import "net/http"

type dashboardResponse struct {
	Students          int     `json:"students"`
	Batches           int     `json:"batches"`
	Teachers          int     `json:"teachers"`
	FeesCollected     float64 `json:"fees_collected"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// Dashboard aggregates the headline numbers shown on the admin landing
// screen.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	students, err := h.db.ListStudents("")
	if err != nil {
		respondStoreError(w, err)
		return
	}

	batches, err := h.db.ListBatches()
	if err != nil {
		respondStoreError(w, err)
		return
	}

	teachers, err := h.db.ListTeachers()
	if err != nil {
		respondStoreError(w, err)
		return
	}

	total, err := h.db.TotalFeesCollected()
	if err != nil {
		respondStoreError(w, err)
		return
	}

	attendance, err := h.db.OverallAttendancePercentage()
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Students:          len(students),
		Batches:           len(batches),
		Teachers:          len(teachers),
		FeesCollected:     total,
		AttendancePercent: attendance,
	})
}
