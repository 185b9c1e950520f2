package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// yooKassaResponse is the subset of the gateway response the bot needs.
type yooKassaResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Confirmation struct {
		Type            string `json:"type"`
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
	Type        string `json:"type"`        // set to "error" on failure
	Code        string `json:"code"`        // error code
	Description string `json:"description"` // error description
}

// YooKassa creates redirect payments through the YooKassa HTTP API.
type YooKassa struct {
	shopID    string
	secretKey string
	apiURL    string
	client    *http.Client
}

func NewYooKassa(shopID, secretKey, apiURL string) *YooKassa {
	return &YooKassa{
		shopID:    shopID,
		secretKey: secretKey,
		apiURL:    apiURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (y *YooKassa) CreatePayment(ctx context.Context, req Request) (*Handle, error) {
	payload := map[string]interface{}{
		"amount": map[string]string{
			"value":    fmt.Sprintf("%.2f", req.Amount),
			"currency": req.Currency,
		},
		"capture": true,
		"confirmation": map[string]string{
			"type":       "redirect",
			"return_url": req.ReturnURL,
		},
		"description": req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payment payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, y.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.SetBasicAuth(y.shopID, y.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")
	// The gateway deduplicates retried creations by this key.
	httpReq.Header.Set("Idempotence-Key", uuid.NewString())

	resp, err := y.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed yooKassaResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if parsed.Type == "error" {
		return nil, fmt.Errorf("payment gateway rejected request: %s (%s)", parsed.Description, parsed.Code)
	}
	if parsed.Confirmation.ConfirmationURL == "" {
		return nil, fmt.Errorf("payment gateway returned empty confirmation URL")
	}

	return &Handle{ID: parsed.ID, ConfirmationURL: parsed.Confirmation.ConfirmationURL}, nil
}
