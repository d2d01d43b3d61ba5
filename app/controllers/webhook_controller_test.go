package controllers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PixelMart/internal/pkg/env"
	"github.com/ManuelReschke/PixelMart/internal/pkg/payment"
)

func newWebhookTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/webhooks/payment", HandlePaymentWebhook)
	return app
}

func postWebhook(app *fiber.App, body []byte, signature string) (int, error) {
	req := httptest.NewRequest("POST", "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}

	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func TestHandlePaymentWebhook_MissingSecretConfig(t *testing.T) {
	env.Env = map[string]string{}
	app := newWebhookTestApp()

	body := []byte(`{"event":"payment.captured"}`)
	status, err := postWebhook(app, body, payment.SignPayload(body, "whatever"))
	require.NoError(t, err)

	// a misconfigured endpoint must not acknowledge anything
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestHandlePaymentWebhook_InvalidSignature(t *testing.T) {
	env.Env = map[string]string{"RAZORPAY_WEBHOOK_SECRET": "test-secret"}
	app := newWebhookTestApp()

	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	t.Run("Missing header", func(t *testing.T) {
		status, err := postWebhook(app, body, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		status, err := postWebhook(app, body, payment.SignPayload(body, "other-secret"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("Tampered body", func(t *testing.T) {
		sig := payment.SignPayload(body, "test-secret")
		tampered := bytes.Replace(body, []byte("order_1"), []byte("order_2"), 1)
		status, err := postWebhook(app, tampered, sig)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestHandlePaymentWebhook_MalformedPayload(t *testing.T) {
	env.Env = map[string]string{"RAZORPAY_WEBHOOK_SECRET": "test-secret"}
	app := newWebhookTestApp()

	// correctly signed, but not a usable event
	body := []byte(`{"payload":{}}`)
	status, err := postWebhook(app, body, payment.SignPayload(body, "test-secret"))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, status)
}
