package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/google/uuid"

	"registration-api/internal/config"
	"registration-api/internal/logger"
)

// ChargeRequest is the payment request accepted from the site frontend.
// Amount is in major currency units.
type ChargeRequest struct {
	Nonce  string  `json:"nonce" validate:"required"`
	Token  string  `json:"token" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// GatewayPayment is the payload shape the Square Payments API expects.
type GatewayPayment struct {
	SourceID          string `json:"source_id"`
	VerificationToken string `json:"verification_token"`
	Autocomplete      bool   `json:"autocomplete"`
	LocationID        string `json:"location_id"`
	AmountMoney       Money  `json:"amount_money"`
	IdempotencyKey    string `json:"idempotency_key"`
}

// Client relays shaped payment requests to the Square gateway. It never
// interprets the gateway's verdict; the response body is handed back to
// the caller untouched.
type Client struct {
	Config config.SquareConfig
	HTTP   *http.Client
	Logger *logger.Logger
}

func NewClient(cfg config.SquareConfig, httpClient *http.Client, log *logger.Logger) *Client {
	return &Client{Config: cfg, HTTP: httpClient, Logger: log}
}

// BuildPayment rewrites a frontend charge request into the gateway shape.
// The amount is converted to minor units and every call gets a freshly
// generated idempotency key, never derived from the request.
func (c *Client) BuildPayment(req ChargeRequest) GatewayPayment {
	return GatewayPayment{
		SourceID:          req.Nonce,
		VerificationToken: req.Token,
		Autocomplete:      true,
		LocationID:        c.Config.LocationID,
		AmountMoney: Money{
			Amount:   int64(math.Round(req.Amount * 100)),
			Currency: c.Config.Currency,
		},
		IdempotencyKey: uuid.NewString(),
	}
}

// Charge posts the shaped payment to the gateway and returns the raw
// response body along with the gateway's status code.
func (c *Client) Charge(req ChargeRequest) ([]byte, int, error) {
	payload := c.BuildPayment(req)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal gateway payload: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.Config.PaymentsURL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build gateway request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.Config.AccessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	c.Logger.LogPayment("CHARGE", fmt.Sprintf("relaying %d %s to gateway", payload.AmountMoney.Amount, payload.AmountMoney.Currency))

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read gateway response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
