package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/PixelMart/app/controllers"
	"github.com/ManuelReschke/PixelMart/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// auth
	api.Post("/auth/register", controllers.HandleAuthRegister)
	api.Post("/auth/login", controllers.HandleAuthLogin)
	api.Post("/auth/logout", controllers.HandleAuthLogout)

	// catalog
	api.Get("/products", controllers.HandleProductList)
	api.Get("/products/:id", controllers.HandleProductShow)
	api.Post("/products", middleware.RequireAPIAdmin, controllers.HandleProductCreate)
	api.Post("/products/upload", middleware.RequireAPIAdmin, controllers.HandleProductImageUpload)

	// orders
	api.Post("/orders", middleware.RequireAPISessionAuth, controllers.HandleOrderCreate)
	api.Get("/orders/user", middleware.RequireAPISessionAuth, controllers.HandleOrderListForUser)
	api.Get("/orders/:id", middleware.RequireAPISessionAuth, controllers.HandleOrderShow)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
