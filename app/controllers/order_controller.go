package controllers

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/PixelMart/app/models"
	"github.com/ManuelReschke/PixelMart/app/repository"
	"github.com/ManuelReschke/PixelMart/internal/pkg/env"
	"github.com/ManuelReschke/PixelMart/internal/pkg/payment"
	"github.com/ManuelReschke/PixelMart/internal/pkg/usercontext"
)

type createOrderRequest struct {
	ProductID      uint   `json:"product_id"`
	VariantType    string `json:"variant_type"`
	VariantLicense string `json:"variant_license"`
}

// gatewayClient is swappable so controller tests can run without Razorpay.
var (
	gatewayClient     payment.GatewayClient
	gatewayClientOnce sync.Once
)

func getGatewayClient() payment.GatewayClient {
	gatewayClientOnce.Do(func() {
		if gatewayClient == nil {
			gatewayClient = payment.NewRazorpayClientFromEnv()
		}
	})
	return gatewayClient
}

// HandleOrderCreate prices the requested variant server side, creates the
// order at the gateway first and only then persists it locally. If the local
// write fails after the gateway succeeded we log the orphaned gateway order
// id so it can be reconciled by hand.
func HandleOrderCreate(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ProductID == 0 || req.VariantType == "" || req.VariantLicense == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id, variant_type and variant_license are required"})
	}

	repos := repository.GetGlobalRepositories()
	product, err := repos.Product.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	variant := product.FindVariant(req.VariantType, req.VariantLicense)
	if variant == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown variant for this product"})
	}

	// The price always comes from the catalog, never from the request.
	amount := models.AmountMinorUnits(variant.Price)
	currency := env.GetEnv("PAYMENT_CURRENCY", "INR")
	receipt := "receipt-" + uuid.New().String()

	ctx, cancel := context.WithTimeout(c.UserContext(), 15*time.Second)
	defer cancel()

	gatewayOrder, err := getGatewayClient().CreateOrder(ctx, payment.CreateOrderInput{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes: map[string]string{
			"product_id":      strconv.FormatUint(uint64(product.ID), 10),
			"variant_type":    variant.Type,
			"variant_license": variant.License,
		},
	})
	if err != nil {
		log.Errorf("[Order] gateway order creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create order"})
	}

	order := &models.Order{
		UserID:    uc.UserID,
		ProductID: product.ID,
		Variant: models.OrderVariant{
			Type:    variant.Type,
			License: variant.License,
			Price:   variant.Price,
		},
		GatewayOrderID: gatewayOrder.ID,
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		Status:         models.OrderStatusPending,
	}

	if err := repos.Order.Create(order); err != nil {
		// The gateway order exists but we have no local row for it. A webhook
		// for this id will be acknowledged and logged as unknown.
		log.Errorf("[Order] orphaned gateway order %s: local persist failed: %v", gatewayOrder.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_id":    gatewayOrder.ID,
		"amount":      amount,
		"currency":    currency,
		"db_order_id": order.ID,
		"receipt":     receipt,
	})
}

// HandleOrderListForUser returns the authenticated user's orders, newest
// first.
func HandleOrderListForUser(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	orders, err := repository.GetGlobalRepositories().Order.GetByUserID(uc.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	return c.JSON(fiber.Map{"orders": orders})
}

// HandleOrderShow returns a single order. Users may only see their own
// orders, admins may see all of them.
func HandleOrderShow(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	order, err := repository.GetGlobalRepositories().Order.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	if order.UserID != uc.UserID && !uc.IsAdmin {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	return c.JSON(order)
}
