package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookEvent(t *testing.T) {
	raw := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_ABC123","order_id":"order_XYZ789"}}}}`)

	ev, err := ParseWebhookEvent(raw)
	require.NoError(t, err)

	assert.Equal(t, EventPaymentCaptured, ev.Event)
	assert.Equal(t, "order_XYZ789", ev.GatewayOrderID)
	assert.Equal(t, "pay_ABC123", ev.GatewayPaymentID)
	assert.Equal(t, raw, ev.Raw)
}

func TestParseWebhookEvent_UnknownEventType(t *testing.T) {
	// unknown event types still parse, the reconciler decides what to do
	ev, err := ParseWebhookEvent([]byte(`{"event":"refund.created","payload":{}}`))
	require.NoError(t, err)

	assert.Equal(t, "refund.created", ev.Event)
	assert.Empty(t, ev.GatewayOrderID)
}

func TestParseWebhookEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Not JSON", `not json at all`},
		{"Empty body", ``},
		{"Missing event", `{"payload":{"payment":{"entity":{"id":"pay_1"}}}}`},
		{"Blank event", `{"event":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWebhookEvent([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
