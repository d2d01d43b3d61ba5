package payment

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// WebhookEvent is the parsed form of a gateway callback. It is ephemeral:
// events are never persisted, idempotence lives in the order row itself.
type WebhookEvent struct {
	Event            string
	GatewayOrderID   string
	GatewayPaymentID string
	Raw              []byte
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhookEvent decodes the gateway webhook body
// {event, payload:{payment:{entity:{id, order_id}}}}.
// The raw bytes are retained so signature checks stay byte-exact.
func ParseWebhookEvent(raw []byte) (*WebhookEvent, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if strings.TrimSpace(envelope.Event) == "" {
		return nil, errors.New("webhook event type is missing")
	}

	return &WebhookEvent{
		Event:            envelope.Event,
		GatewayOrderID:   envelope.Payload.Payment.Entity.OrderID,
		GatewayPaymentID: envelope.Payload.Payment.Entity.ID,
		Raw:              raw,
	}, nil
}
