package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pathtwo/pathtwo/internal/models"
)

const defaultRelatedLimit = 3

// ListPosts serves the public blog index (published posts only).
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), true)
	if err != nil {
		h.serviceError(w, err, "Failed to list posts")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	h.respondJSON(w, http.StatusOK, posts)
}

// GetPost serves a single published post by slug.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetPost(r.Context(), mux.Vars(r)["slug"], false)
	if err != nil {
		h.serviceError(w, err, "Failed to load post")
		return
	}
	h.respondJSON(w, http.StatusOK, post)
}

// RelatedPosts serves posts ranked by relatedness to the given slug.
func (h *Handler) RelatedPosts(w http.ResponseWriter, r *http.Request) {
	limit := defaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 20 {
			limit = parsed
		}
	}
	posts, err := h.svc.RelatedPosts(r.Context(), mux.Vars(r)["slug"], limit)
	if err != nil {
		h.serviceError(w, err, "Failed to rank related posts")
		return
	}
	h.respondJSON(w, http.StatusOK, posts)
}

// AdminListPosts serves every post, drafts included.
func (h *Handler) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), false)
	if err != nil {
		h.serviceError(w, err, "Failed to list posts")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	h.respondJSON(w, http.StatusOK, posts)
}

// CreatePost stores a new post.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.CreatePost(r.Context(), &post); err != nil {
		h.serviceError(w, err, "Failed to create post")
		return
	}
	h.respondJSON(w, http.StatusCreated, post)
}

// UpdatePost replaces an existing post.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	post.ID = id
	if err := h.svc.UpdatePost(r.Context(), &post); err != nil {
		h.serviceError(w, err, "Failed to update post")
		return
	}
	h.respondJSON(w, http.StatusOK, post)
}

// DeletePost removes a post.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		h.serviceError(w, err, "Failed to delete post")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
