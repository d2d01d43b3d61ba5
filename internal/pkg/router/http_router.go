package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PixelMart/app/controllers"
	"github.com/ManuelReschke/PixelMart/internal/pkg/middleware"
	"github.com/ManuelReschke/PixelMart/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// The payment gateway posts here. No rate limiter on this route: a
	// throttled webhook would be retried by the gateway and only delay
	// reconciliation.
	app.Post("/webhooks/payment", controllers.HandlePaymentWebhook)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
