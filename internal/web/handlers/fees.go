package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type recordPaymentRequest struct {
	StudentID     int64   `json:"student_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PendingAmount float64 `json:"pending_amount"`
	Date          string  `json:"date"`
}

// RecordPayment overwrites the student's fee record.
func (h *Handlers) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.db.RecordPayment(req.StudentID, req.AmountPaid, req.PendingAmount, req.Date); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"recorded": true})
}

// GetFees returns a student's fee record, or 404 when none exists.
func (h *Handlers) GetFees(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	fees, err := h.db.GetFees(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if fees == nil {
		respondError(w, http.StatusNotFound, "no fee record for student")
		return
	}
	respondJSON(w, http.StatusOK, fees)
}

// TotalFeesCollected returns the sum of paid amounts across all students.
func (h *Handlers) TotalFeesCollected(w http.ResponseWriter, r *http.Request) {
	total, err := h.db.TotalFeesCollected()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"total": total})
}
