package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type sendMessageRequest struct {
	Text       string `json:"text"`
	Date       string `json:"date"`
	SenderType string `json:"sender_type"`
	Recipient  string `json:"recipient"`
}

// SendMessage stores a message. An empty recipient broadcasts to everyone.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	if err := h.db.SendMessage(req.Text, req.Date, req.SenderType, req.Recipient); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]bool{"sent": true})
}

// ListMessagesFor returns the messages addressed to a recipient plus all
// broadcasts, newest first.
func (h *Handlers) ListMessagesFor(w http.ResponseWriter, r *http.Request) {
	recipient := chi.URLParam(r, "recipient")
	if recipient == "" {
		respondError(w, http.StatusBadRequest, "recipient is required")
		return
	}

	messages, err := h.db.ListMessagesFor(recipient)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"count":    len(messages),
	})
}

// ListAllMessages returns every stored message, newest first.
func (h *Handlers) ListAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.db.ListAllMessages()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"count":    len(messages),
	})
}
