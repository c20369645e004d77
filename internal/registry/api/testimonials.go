package api

import (
	"net/http"

	"registration-api/internal/models"
)

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Service.ListTestimonials()
	if err != nil {
		h.writeError(w, "Testimonial", err)
		return
	}
	h.writeJSON(w, http.StatusOK, testimonials)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) AddTestimonial(w http.ResponseWriter, r *http.Request) {
	var patch models.TestimonialPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	testimonial, err := h.Service.AddTestimonial(patch)
	if err != nil {
		h.writeError(w, "Testimonial", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Testimonial Added", testimonial)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Testimonial")
	if !ok {
		return
	}
	var patch models.TestimonialPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	testimonial, err := h.Service.UpdateTestimonial(id, patch)
	if err != nil {
		h.writeError(w, "Testimonial", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Testimonial Updated", testimonial)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Testimonial")
	if !ok {
		return
	}

	testimonial, err := h.Service.DeleteTestimonial(id)
	if err != nil {
		h.writeError(w, "Testimonial", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Testimonial Deleted", testimonial)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}
