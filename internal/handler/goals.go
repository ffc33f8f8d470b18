package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pathtwo/pathtwo/internal/models"
)

// ListGoals serves all goals with computed progress.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to list goals")
		return
	}
	if goals == nil {
		goals = []models.FinancialGoal{}
	}
	h.respondJSON(w, http.StatusOK, goals)
}

// CreateGoal stores a new goal.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var goal models.FinancialGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.CreateGoal(r.Context(), &goal); err != nil {
		h.serviceError(w, err, "Failed to create goal")
		return
	}
	h.respondJSON(w, http.StatusCreated, goal)
}

// UpdateGoal replaces an existing goal.
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var goal models.FinancialGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	goal.ID = id
	if err := h.svc.UpdateGoal(r.Context(), &goal); err != nil {
		h.serviceError(w, err, "Failed to update goal")
		return
	}
	h.respondJSON(w, http.StatusOK, goal)
}

// DeleteGoal removes a goal.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		h.serviceError(w, err, "Failed to delete goal")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
