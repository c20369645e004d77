package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"registration-api/internal/logger"
	"registration-api/internal/registry"
	"registration-api/internal/utils"
)

type Handler struct {
	Service *registry.Service
	Logger  *logger.Logger
}

func NewHandler(service *registry.Service, log *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/event", func(r chi.Router) {
		r.Get("/get", h.ListEvents)
		r.With(RequireJSON).Post("/add", h.AddEvent)
		r.With(RequireJSON).Put("/update/{id}", h.UpdateEvent)
		r.Delete("/delete/{id}", h.DeleteEvent)
	})

	r.Route("/testimonial", func(r chi.Router) {
		r.Get("/get", h.ListTestimonials)
		r.With(RequireJSON).Post("/add", h.AddTestimonial)
		r.With(RequireJSON).Put("/update/{id}", h.UpdateTestimonial)
		r.Delete("/delete/{id}", h.DeleteTestimonial)
	})

	r.Route("/message", func(r chi.Router) {
		r.Get("/get", h.ListMessages)
		r.With(RequireJSON).Post("/add", h.AddMessage)
		r.With(RequireJSON).Put("/update/{id}", h.UpdateMessage)
		r.Delete("/delete/{id}", h.DeleteMessage)
	})

	r.Route("/registration", func(r chi.Router) {
		r.Get("/get", h.ListRegistrations)
		r.With(RequireJSON).Post("/add", h.AddRegistration)
		r.With(RequireJSON).Put("/update/{id}", h.UpdateRegistration)
		r.Delete("/delete/{id}", h.DeleteRegistration)
	})

	r.Get("/data", h.GetData)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode response: %v", err))
	}
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	h.writeJSON(w, status, utils.Envelope{Status: status, Message: message, Data: data})
}

// writeError maps service errors onto the envelope: missing records are
// 404, dangling event references are 400, anything else is 500.
func (h *Handler) writeError(w http.ResponseWriter, entity string, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		h.writeEnvelope(w, http.StatusNotFound, entity+" Not Found", struct{}{})
	case errors.Is(err, registry.ErrUnknownEvent):
		h.writeEnvelope(w, http.StatusBadRequest, "Event Not Found", struct{}{})
	default:
		h.Logger.Error("API", err.Error())
		h.writeEnvelope(w, http.StatusInternalServerError, "Internal Server Error", struct{}{})
	}
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeEnvelope(w, http.StatusBadRequest, "Invalid request body", struct{}{})
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, entity string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeEnvelope(w, http.StatusNotFound, entity+" Not Found", struct{}{})
		return 0, false
	}
	return id, true
}

// GetData serves the public aggregate read used by the site's landing
// page: non-archived events plus all testimonials.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Service.Snapshot()
	if err != nil {
		h.writeError(w, "Data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}
