package payment

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/ManuelReschke/PixelMart/app/models"
)

// OrderStore is the slice of the order repository the reconciler needs.
type OrderStore interface {
	GetByGatewayOrderID(gatewayOrderID string) (*models.Order, error)
	MarkPaid(gatewayOrderID, gatewayPaymentID string) (bool, error)
	MarkFailed(gatewayOrderID string) (bool, error)
}

// Notifier dispatches the post-payment notification. Fire-and-forget: the
// reconciler logs a failed dispatch and moves on, it never fails the webhook.
type Notifier interface {
	NotifyOrderPaid(orderID uint) error
}

// Reconciler applies verified webhook events to order state. The transition
// out of pending happens at most once per gateway order; duplicate and
// concurrent deliveries all converge on the same final state.
type Reconciler struct {
	orders   OrderStore
	notifier Notifier
}

// NewReconciler creates a reconciler from an injected order store and notifier.
func NewReconciler(orders OrderStore, notifier Notifier) *Reconciler {
	return &Reconciler{orders: orders, notifier: notifier}
}

// Process consumes a verified webhook event. A nil return means the webhook
// must be acknowledged with success; a TransientError means the store was
// unreachable and the gateway should redeliver.
func (r *Reconciler) Process(ctx context.Context, ev *WebhookEvent) error {
	_ = ctx
	switch ev.Event {
	case EventPaymentCaptured:
		return r.handleCaptured(ev)
	case EventPaymentFailed:
		return r.handleFailed(ev)
	default:
		// Event types we do not handle yet are acknowledged as no-ops.
		log.Debugf("[Payment] Ignoring webhook event type %s", ev.Event)
		return nil
	}
}

func (r *Reconciler) handleCaptured(ev *WebhookEvent) error {
	order, err := r.orders.GetByGatewayOrderID(ev.GatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Anomaly: the gateway reports payment for an order we never
			// created. Retrying cannot recover it, so acknowledge.
			log.Warnf("[Payment] No order found for gateway order %s (payment %s)", ev.GatewayOrderID, ev.GatewayPaymentID)
			return nil
		}
		return NewTransientError("order lookup", err)
	}

	if order.Status == models.OrderStatusPaid {
		// Duplicate delivery; gateways redeliver webhooks. No mutation,
		// no second notification.
		log.Infof("[Payment] Duplicate capture for gateway order %s, already paid", ev.GatewayOrderID)
		return nil
	}

	transitioned, err := r.orders.MarkPaid(ev.GatewayOrderID, ev.GatewayPaymentID)
	if err != nil {
		return NewTransientError("order update", err)
	}
	if !transitioned {
		// A concurrent delivery won the conditional update, or the order
		// had already left pending. Same duplicate path as above.
		log.Infof("[Payment] Capture for gateway order %s lost the conditional update, treating as duplicate", ev.GatewayOrderID)
		return nil
	}

	log.Infof("[Payment] Order %d marked paid (gateway order %s, payment %s)", order.ID, ev.GatewayOrderID, ev.GatewayPaymentID)

	if err := r.notifier.NotifyOrderPaid(order.ID); err != nil {
		// Side channel only; never bubbles into the webhook response.
		log.Errorf("[Payment] Failed to dispatch notification for order %d: %v", order.ID, err)
	}
	return nil
}

func (r *Reconciler) handleFailed(ev *WebhookEvent) error {
	// the payment id is logged but never stored, it only exists on paid orders
	transitioned, err := r.orders.MarkFailed(ev.GatewayOrderID)
	if err != nil {
		return NewTransientError("order update", err)
	}
	if transitioned {
		log.Infof("[Payment] Order for gateway order %s marked failed (payment %s)", ev.GatewayOrderID, ev.GatewayPaymentID)
	} else {
		// Either the order is unknown or it already left pending. A paid
		// order stays paid no matter what arrives afterwards.
		log.Infof("[Payment] Ignoring failure event for gateway order %s, no pending order", ev.GatewayOrderID)
	}
	return nil
}
