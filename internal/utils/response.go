package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response wrapper returned by every mutating endpoint.
// Status mirrors the HTTP status code.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func WriteEnvelope(w http.ResponseWriter, status int, message string, data interface{}) error {
	return WriteJSON(w, status, Envelope{Status: status, Message: message, Data: data})
}
