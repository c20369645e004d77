package api

import (
	"net/http"

	"registration-api/internal/models"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.ListEvents()
	if err != nil {
		h.writeError(w, "Event", err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var patch models.EventPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	event, err := h.Service.AddEvent(patch)
	if err != nil {
		h.writeError(w, "Event", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Event Added", event)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Event")
	if !ok {
		return
	}
	var patch models.EventPatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	event, err := h.Service.UpdateEvent(id, patch)
	if err != nil {
		h.writeError(w, "Event", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Event Updated", event)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Event")
	if !ok {
		return
	}

	event, err := h.Service.DeleteEvent(id)
	if err != nil {
		h.writeError(w, "Event", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Event Deleted", event)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}
