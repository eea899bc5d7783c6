package payments

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const DefaultPiAPIURL = "https://api.minepi.com"

// PiAdapter talks to the Pi Network payments API using the server-side API key.
type PiAdapter struct {
	APIKey  string
	BaseURL string
	client  *resty.Client
}

func NewPiAdapter(apiKey, baseURL string) *PiAdapter {
	if baseURL == "" {
		baseURL = DefaultPiAPIURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &PiAdapter{
		APIKey:  apiKey,
		BaseURL: baseURL,
		client:  resty.New().SetBaseURL(baseURL),
	}
}

func (p *PiAdapter) Approve(ctx context.Context, paymentID string) (Result, error) {
	return p.do(ctx, http.MethodPost, "/v2/payments/{paymentId}/approve", paymentID, map[string]any{})
}

func (p *PiAdapter) Complete(ctx context.Context, req CompleteRequest) (Result, error) {
	return p.do(ctx, http.MethodPost, "/v2/payments/{paymentId}/complete", req.PaymentID, map[string]string{"txid": req.TxID})
}

func (p *PiAdapter) Cancel(ctx context.Context, paymentID string) (Result, error) {
	return p.do(ctx, http.MethodPost, "/v2/payments/{paymentId}/cancel", paymentID, map[string]any{})
}

func (p *PiAdapter) GetPayment(ctx context.Context, paymentID string) (Result, error) {
	return p.do(ctx, http.MethodGet, "/v2/payments/{paymentId}", paymentID, nil)
}

// do issues a single request. There is no retry: whatever the platform answers is relayed.
func (p *PiAdapter) do(ctx context.Context, method, path, paymentID string, body any) (Result, error) {
	if p.APIKey == "" {
		return Result{}, ErrMissingAPIKey
	}

	req := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Key "+p.APIKey).
		SetHeader("Content-Type", "application/json").
		SetPathParam("paymentId", paymentID)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return Result{}, fmt.Errorf("pi api %s %s: %w", method, path, err)
	}

	if !resp.IsSuccess() {
		return Result{}, &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	return Result{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
