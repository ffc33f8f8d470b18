package handler

import "net/http"

// Sitemap serves the cached sitemap built from published posts.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body := h.seo.Sitemap()
	if body == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Sitemap not ready")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

// Feed serves the cached RSS feed.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	body := h.seo.Feed()
	if body == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Feed not ready")
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(body)
}
