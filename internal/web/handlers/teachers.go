package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/classdesk/classdesk/internal/database"
)

// ListTeachers returns all teachers ordered by name.
func (h *Handlers) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.db.ListTeachers()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

// AddTeacher inserts a teacher and returns the new id.
func (h *Handlers) AddTeacher(w http.ResponseWriter, r *http.Request) {
	var teacher database.Teacher
	if err := json.NewDecoder(r.Body).Decode(&teacher); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if teacher.Name == "" {
		respondError(w, http.StatusBadRequest, "teacher name is required")
		return
	}

	id, err := h.db.AddTeacher(teacher.Name, teacher.Subjects, teacher.Availability)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// DeleteTeacher removes a teacher row.
func (h *Handlers) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid teacher id")
		return
	}

	if err := h.db.DeleteTeacher(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
