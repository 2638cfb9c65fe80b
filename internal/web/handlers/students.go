package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/classdesk/classdesk/internal/database"
)

// ListStudents returns the name-ordered roster. Query params: "search" for
// a substring filter, "full=1" for the admin projection with passwords and
// username matching.
func (h *Handlers) ListStudents(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var (
		students []database.Student
		err      error
	)
	if r.URL.Query().Get("full") == "1" {
		students, err = h.db.ListStudentsFull(search)
	} else {
		students, err = h.db.ListStudents(search)
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"students": students,
		"count":    len(students),
	})
}

// SearchStudents matches the textual id against a prefix.
func (h *Handlers) SearchStudents(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		respondError(w, http.StatusBadRequest, "prefix is required")
		return
	}

	students, err := h.db.SearchStudentsByIDPrefix(prefix)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"students": students,
		"count":    len(students),
	})
}

// GetStudent returns one student by id.
func (h *Handlers) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	student, err := h.db.GetStudentByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if student == nil {
		respondError(w, http.StatusNotFound, "student not found")
		return
	}
	respondJSON(w, http.StatusOK, student)
}

// AddStudent inserts a student and returns the new id.
func (h *Handlers) AddStudent(w http.ResponseWriter, r *http.Request) {
	var student database.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.db.AddStudent(&student)
	if err != nil {
		if database.IsConstraintViolation(err) {
			respondError(w, http.StatusConflict, "username already taken")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateStudent overwrites the student's mutable columns.
func (h *Handlers) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	var student database.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.db.UpdateStudent(id, &student); err != nil {
		if database.IsConstraintViolation(err) {
			respondError(w, http.StatusConflict, "username already taken")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// DeleteStudent removes the student and its dependent rows.
func (h *Handlers) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	if err := h.db.DeleteStudent(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
