package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pathtwo/pathtwo/internal/models"
)

// SubmitContact accepts a public contact-form submission.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.SubmitContactMessage(r.Context(), &msg); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"id": msg.PublicID})
}

// ListMessages serves all contact messages to the admin area.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.ListMessages(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to list messages")
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	h.respondJSON(w, http.StatusOK, messages)
}

// MarkMessageRead flags a message as read.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkMessageRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err, "Failed to mark message read")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

// DeleteMessage removes a message.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMessage(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err, "Failed to delete message")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
