package handler

import (
	"net/http"
)

// maxUploadBytes bounds image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// UploadImage accepts a multipart image for use in posts and returns the
// public URL of the stored file.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Missing image field")
		return
	}
	defer file.Close()

	url, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		h.log.WithError(err).Error("Failed to store upload")
		h.respondError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
