package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature_Valid(t *testing.T) {
	payload := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)
	secret := "test-webhook-secret"

	sig := SignPayload(payload, secret)

	assert.True(t, VerifyWebhookSignature(payload, sig, secret))
}

func TestVerifyWebhookSignature_TamperedBody(t *testing.T) {
	payload := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)
	secret := "test-webhook-secret"

	sig := SignPayload(payload, secret)

	// flip one byte in the body after signing
	tampered := append([]byte(nil), payload...)
	tampered[10] ^= 0x01

	assert.False(t, VerifyWebhookSignature(tampered, sig, secret))
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	payload := []byte(`{"event":"payment.failed"}`)

	sig := SignPayload(payload, "secret-a")

	assert.False(t, VerifyWebhookSignature(payload, sig, "secret-b"))
}

func TestVerifyWebhookSignature_FailsClosed(t *testing.T) {
	payload := []byte(`{}`)
	sig := SignPayload(payload, "secret")

	tests := []struct {
		name      string
		signature string
		secret    string
	}{
		{"Empty signature", "", "secret"},
		{"Whitespace signature", "   ", "secret"},
		{"Empty secret", sig, ""},
		{"Non-hex signature", "not-a-hex-string", "secret"},
		{"Truncated signature", sig[:16], "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyWebhookSignature(payload, tt.signature, tt.secret))
		})
	}
}

func TestVerifyWebhookSignature_AcceptsUppercaseHex(t *testing.T) {
	payload := []byte(`{"event":"payment.captured"}`)
	secret := "secret"

	sig := strings.ToUpper(SignPayload(payload, secret))

	assert.True(t, VerifyWebhookSignature(payload, sig, secret))
}
