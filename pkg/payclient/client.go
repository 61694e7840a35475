// Package payclient talks to the external hosted-checkout processor over
// its JSON API. It implements payment.Processor.
package payclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"loanlift-backend/internal/domain/payment"
)

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func New(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// wire types

type sessionRequest struct {
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	SuccessURL  string            `json:"success_url"`
	CancelURL   string            `json:"cancel_url"`
	Metadata    sessionMetadata   `json:"metadata"`
}

type sessionMetadata struct {
	ApplicationID string `json:"application_id"`
	Email         string `json:"email"`
	LoanTitle     string `json:"loan_title"`
}

type sessionResponse struct {
	ID            string          `json:"id"`
	URL           string          `json:"url"`
	PaymentIntent string          `json:"payment_intent"`
	PaymentStatus string          `json:"payment_status"`
	AmountTotal   int64           `json:"amount_total"`
	Currency      string          `json:"currency"`
	Metadata      sessionMetadata `json:"metadata"`
}

func (c *Client) CreateSession(ctx context.Context, in payment.CreateSessionInput) (*payment.CheckoutSession, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions", c.baseURL)
	req := sessionRequest{
		AmountTotal: in.AmountMinor,
		Currency:    in.Currency,
		SuccessURL:  in.SuccessURL,
		CancelURL:   in.CancelURL,
		Metadata: sessionMetadata{
			ApplicationID: in.Metadata.ApplicationID,
			Email:         in.Metadata.Email,
			LoanTitle:     in.Metadata.LoanTitle,
		},
	}
	var resp sessionResponse
	// A fresh Idempotency-Key per create: retries on our side must not
	// open two sessions for one click.
	if err := c.do(ctx, http.MethodPost, url, uuid.NewString(), req, &resp); err != nil {
		return nil, err
	}
	return &payment.CheckoutSession{ID: resp.ID, URL: resp.URL}, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseURL, sessionID)
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, url, "", nil, &resp); err != nil {
		return nil, err
	}
	return &payment.Session{
		ID:            resp.ID,
		TransactionID: resp.PaymentIntent,
		PaymentStatus: resp.PaymentStatus,
		AmountMinor:   resp.AmountTotal,
		Currency:      resp.Currency,
		Metadata: payment.SessionMetadata{
			ApplicationID: resp.Metadata.ApplicationID,
			Email:         resp.Metadata.Email,
			LoanTitle:     resp.Metadata.LoanTitle,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, method, url, idempotencyKey string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("payclient: marshal request: %w", err)
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, buf)
	if err != nil {
		return fmt.Errorf("payclient: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payclient: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("payclient: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("payclient: %s %s: status %d: %s", method, url, resp.StatusCode, string(raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("payclient: decode response: %w", err)
		}
	}
	return nil
}
