package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ManuelReschke/PixelMart/internal/pkg/env"
)

const defaultGatewayBaseURL = "https://api.razorpay.com/v1"

// GatewayClient creates remote payment orders. The gateway later reports the
// payment outcome asynchronously via webhook.
type GatewayClient interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*GatewayOrder, error)
}

// CreateOrderInput describes the remote order to create. Amount is in minor
// currency units.
type CreateOrderInput struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// GatewayOrder is the gateway's view of a created order.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// RazorpayClient talks to the Razorpay orders API using key-pair basic auth.
type RazorpayClient struct {
	KeyID     string
	KeySecret string
	BaseURL   string

	HTTPClient *http.Client
}

func NewRazorpayClientFromEnv() *RazorpayClient {
	return &RazorpayClient{
		KeyID:     strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_ID", "")),
		KeySecret: strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_SECRET", "")),
		BaseURL:   strings.TrimRight(env.GetEnv("RAZORPAY_API_BASE_URL", defaultGatewayBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, in CreateOrderInput) (*GatewayOrder, error) {
	if strings.TrimSpace(c.KeyID) == "" || strings.TrimSpace(c.KeySecret) == "" {
		return nil, errors.New("RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET are not configured")
	}
	if in.Amount <= 0 {
		return nil, errors.New("order amount must be positive")
	}
	if strings.TrimSpace(in.Currency) == "" {
		return nil, errors.New("order currency is required")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway order create failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var out GatewayOrder
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, errors.New("gateway order create returned empty order id")
	}
	return &out, nil
}
