package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/PixelMart/app/repository"
	"github.com/ManuelReschke/PixelMart/internal/pkg/env"
	"github.com/ManuelReschke/PixelMart/internal/pkg/jobqueue"
	"github.com/ManuelReschke/PixelMart/internal/pkg/payment"
)

const webhookSignatureHeader = "X-Razorpay-Signature"

// HandlePaymentWebhook receives payment events from the gateway. The
// signature is checked against the raw request body before anything is
// parsed. Anomalies such as unknown order ids or repeated deliveries are
// acknowledged with 200 so the gateway stops retrying; only transient
// store failures return 500.
func HandlePaymentWebhook(c *fiber.Ctx) error {
	secret := env.GetEnv("RAZORPAY_WEBHOOK_SECRET", "")
	if secret == "" {
		log.Errorf("[Webhook] RAZORPAY_WEBHOOK_SECRET is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	// Copy the raw body before any parsing touches it. The signature covers
	// the exact bytes on the wire.
	rawBody := append([]byte(nil), c.BodyRaw()...)

	signature := c.Get(webhookSignatureHeader)
	if !payment.VerifyWebhookSignature(rawBody, signature, secret) {
		log.Warnf("[Webhook] invalid signature from %s", c.IP())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid signature"})
	}

	event, err := payment.ParseWebhookEvent(rawBody)
	if err != nil {
		log.Warnf("[Webhook] malformed event payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}

	reconciler := payment.NewReconciler(
		repository.GetGlobalRepositories().Order,
		jobqueue.NewMailNotifier(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := reconciler.Process(ctx, event); err != nil {
		if payment.IsTransient(err) {
			log.Errorf("[Webhook] transient failure for %s: %v", event.GatewayOrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
		}
		log.Errorf("[Webhook] processing failed for %s: %v", event.GatewayOrderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "success"})
}
