package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/repository"
	"github.com/pathtwo/pathtwo/internal/seo"
	"github.com/pathtwo/pathtwo/internal/service"
	"github.com/pathtwo/pathtwo/internal/uploads"
)

type Handler struct {
	svc     *service.Service
	seo     *seo.Generator
	uploads *uploads.Store
	log     *logrus.Logger
}

func NewHandler(svc *service.Service, seoGen *seo.Generator, uploadStore *uploads.Store, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, seo: seoGen, uploads: uploadStore, log: log}
}

// RegisterRoutes wires the public and admin routes onto the router. Admin
// routes sit behind the session middleware.
func (h *Handler) RegisterRoutes(r *mux.Router, auth mux.MiddlewareFunc) {
	// Public API
	r.HandleFunc("/api/posts", h.ListPosts).Methods("GET")
	r.HandleFunc("/api/posts/{slug}", h.GetPost).Methods("GET")
	r.HandleFunc("/api/posts/{slug}/related", h.RelatedPosts).Methods("GET")
	r.HandleFunc("/api/wealth/summary", h.WealthSummary).Methods("GET")
	r.HandleFunc("/api/wealth/latest", h.LatestWealth).Methods("GET")
	r.HandleFunc("/api/goals", h.ListGoals).Methods("GET")
	r.HandleFunc("/api/contact", h.SubmitContact).Methods("POST")
	r.HandleFunc("/api/admin/login", h.Login).Methods("POST")
	r.HandleFunc("/sitemap.xml", h.Sitemap).Methods("GET")
	r.HandleFunc("/feed.xml", h.Feed).Methods("GET")

	// Admin API
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth)
	admin.HandleFunc("/logout", h.Logout).Methods("POST")
	admin.HandleFunc("/posts", h.AdminListPosts).Methods("GET")
	admin.HandleFunc("/posts", h.CreatePost).Methods("POST")
	admin.HandleFunc("/posts/{id}", h.UpdatePost).Methods("PUT")
	admin.HandleFunc("/posts/{id}", h.DeletePost).Methods("DELETE")
	admin.HandleFunc("/wealth", h.CreateWealthEntry).Methods("POST")
	admin.HandleFunc("/wealth/{id}", h.UpdateWealthEntry).Methods("PUT")
	admin.HandleFunc("/wealth/{id}", h.DeleteWealthEntry).Methods("DELETE")
	admin.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	admin.HandleFunc("/goals/{id}", h.UpdateGoal).Methods("PUT")
	admin.HandleFunc("/goals/{id}", h.DeleteGoal).Methods("DELETE")
	admin.HandleFunc("/messages", h.ListMessages).Methods("GET")
	admin.HandleFunc("/messages/{id}/read", h.MarkMessageRead).Methods("PUT")
	admin.HandleFunc("/messages/{id}", h.DeleteMessage).Methods("DELETE")
	admin.HandleFunc("/uploads", h.UploadImage).Methods("POST")
	admin.HandleFunc("/insights", h.Insights).Methods("GET")
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.WithError(err).Error("Failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// serviceError maps repository misses to 404 and everything else to 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error, context string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "Not found")
		return
	}
	h.log.WithError(err).Error(context)
	h.respondError(w, http.StatusInternalServerError, context)
}
