package api

import (
	"net/http"

	"registration-api/internal/models"
)

func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.Service.ListRegistrations()
	if err != nil {
		h.writeError(w, "Registration", err)
		return
	}
	h.writeJSON(w, http.StatusOK, registrations)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) AddRegistration(w http.ResponseWriter, r *http.Request) {
	var patch models.RegistrationPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	registration, err := h.Service.AddRegistration(patch)
	if err != nil {
		h.writeError(w, "Registration", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Registration Added", registration)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Registration")
	if !ok {
		return
	}
	var patch models.RegistrationPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	registration, err := h.Service.UpdateRegistration(id, patch)
	if err != nil {
		h.writeError(w, "Registration", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Registration Updated", registration)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Registration")
	if !ok {
		return
	}

	registration, err := h.Service.DeleteRegistration(id)
	if err != nil {
		h.writeError(w, "Registration", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Registration Deleted", registration)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}
