package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pathtwo/pathtwo/internal/models"
)

// WealthSummary serves the dashboard aggregation: one category when
// ?category= is supplied, otherwise all categories.
func (h *Handler) WealthSummary(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		summaries, err := h.svc.WealthSummaries(r.Context())
		if err != nil {
			h.serviceError(w, err, "Failed to build wealth summaries")
			return
		}
		h.respondJSON(w, http.StatusOK, summaries)
		return
	}

	category := models.WealthCategory(raw)
	if !category.Valid() {
		h.respondError(w, http.StatusBadRequest, "Unknown category")
		return
	}
	summary, err := h.svc.WealthSummary(r.Context(), category)
	if err != nil {
		h.serviceError(w, err, "Failed to build wealth summary")
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// LatestWealth serves the raw latest entry for a category, 404 when the
// category has no entries yet.
func (h *Handler) LatestWealth(w http.ResponseWriter, r *http.Request) {
	category := models.WealthCategory(r.URL.Query().Get("category"))
	if !category.Valid() {
		h.respondError(w, http.StatusBadRequest, "Unknown category")
		return
	}
	entry, err := h.svc.LatestWealth(r.Context(), category)
	if err != nil {
		h.serviceError(w, err, "Failed to load latest wealth entry")
		return
	}
	h.respondJSON(w, http.StatusOK, entry)
}

// CreateWealthEntry stores a new snapshot from the admin area.
func (h *Handler) CreateWealthEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.WealthEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.CreateWealthEntry(r.Context(), &entry); err != nil {
		h.serviceError(w, err, "Failed to create wealth entry")
		return
	}
	h.respondJSON(w, http.StatusCreated, entry)
}

// UpdateWealthEntry replaces an existing snapshot.
func (h *Handler) UpdateWealthEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var entry models.WealthEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry.ID = id
	if err := h.svc.UpdateWealthEntry(r.Context(), &entry); err != nil {
		h.serviceError(w, err, "Failed to update wealth entry")
		return
	}
	h.respondJSON(w, http.StatusOK, entry)
}

// DeleteWealthEntry removes a snapshot.
func (h *Handler) DeleteWealthEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteWealthEntry(r.Context(), id); err != nil {
		h.serviceError(w, err, "Failed to delete wealth entry")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

// Insights serves the admin view: every category summary with its FIRE
// projection.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.WealthInsights(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to build insights")
		return
	}
	h.respondJSON(w, http.StatusOK, insights)
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
