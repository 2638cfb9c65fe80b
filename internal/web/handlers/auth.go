package handlers

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks a credential and returns the matched identity.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if identity == nil {
		respondError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	respondJSON(w, http.StatusOK, identity)
}

type changePasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangeAdminPassword replaces the stored admin password.
func (h *Handlers) ChangeAdminPassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	admin, err := h.db.GetAdmin(req.Username)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if admin == nil {
		respondError(w, http.StatusNotFound, "admin not found")
		return
	}

	if err := h.db.UpdateAdminPassword(req.Username, req.Password); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
