package api

import (
	"net/http"

	"registration-api/internal/models"
)

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.ListMessages()
	if err != nil {
		h.writeError(w, "Message", err)
		return
	}
	h.writeJSON(w, http.StatusOK, messages)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var patch models.MessagePatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	message, err := h.Service.AddMessage(patch)
	if err != nil {
		h.writeError(w, "Message", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Message Added", message)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Message")
	if !ok {
		return
	}
	var patch models.MessagePatch
	if !h.decodeBody(w, r, &patch) {
		return
	}

	message, err := h.Service.UpdateMessage(id, patch)
	if err != nil {
		h.writeError(w, "Message", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Message Updated", message)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Message")
	if !ok {
		return
	}

	message, err := h.Service.DeleteMessage(id)
	if err != nil {
		h.writeError(w, "Message", err)
		return
	}
	h.writeEnvelope(w, http.StatusOK, "Message Deleted", message)
	h.Logger.LogRequest(r.Method, r.URL.Path, http.StatusOK)
}
