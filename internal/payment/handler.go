package payment

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"registration-api/internal/logger"
	"registration-api/internal/utils"
)

type Handler struct {
	Client   *Client
	Logger   *logger.Logger
	validate *validator.Validate
}

func NewHandler(client *Client, log *logger.Logger) *Handler {
	return &Handler{
		Client:   client,
		Logger:   log,
		validate: validator.New(),
	}
}

// Charge accepts a payment request, relays it to the gateway, and writes
// the gateway's JSON response back unmodified. A transport failure is
// surfaced as a gateway-error envelope rather than a raw error.
func (h *Handler) Charge(w http.ResponseWriter, r *http.Request) {
	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteEnvelope(w, http.StatusBadRequest, "Invalid request body", struct{}{})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.Logger.Warn("PAYMENT", fmt.Sprintf("rejected charge request: %v", err))
		utils.WriteEnvelope(w, http.StatusBadRequest, "Invalid payment request", struct{}{})
		return
	}

	body, status, err := h.Client.Charge(req)
	if err != nil {
		h.Logger.Error("PAYMENT", fmt.Sprintf("gateway call failed: %v", err))
		utils.WriteEnvelope(w, http.StatusBadGateway, "Payment gateway unavailable", struct{}{})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	h.Logger.LogRequest(r.Method, r.URL.Path, status)
}
