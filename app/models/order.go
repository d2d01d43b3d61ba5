package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// OrderVariant is the purchased variant snapshot, captured at order-creation
// time. It is a copy, not a live reference; the price never changes afterwards.
type OrderVariant struct {
	Type    string  `gorm:"type:varchar(20);not null" json:"type"`
	License string  `gorm:"type:varchar(20);not null" json:"license"`
	Price   float64 `gorm:"not null" json:"price"`
}

// Order is a purchase of one product variant, keyed for reconciliation by the
// gateway order reference. Lifecycle: pending -> paid (terminal) or failed.
type Order struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	User             User           `gorm:"foreignKey:UserID" json:"-"`
	ProductID        uint           `gorm:"index;not null" json:"product_id"`
	Product          Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant          OrderVariant   `gorm:"embedded;embeddedPrefix:variant_" json:"variant"`
	GatewayOrderID   string         `gorm:"uniqueIndex;type:varchar(100);not null" json:"gateway_order_id"`
	GatewayPaymentID string         `gorm:"type:varchar(100);default:null" json:"gateway_payment_id,omitempty"`
	Amount           int64          `gorm:"not null" json:"amount"`
	Currency         string         `gorm:"type:varchar(10);not null" json:"currency"`
	Receipt          string         `gorm:"type:varchar(100)" json:"receipt"`
	Status           string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// AmountMinorUnits converts a major-unit price into integer minor currency
// units (e.g. cents/paise). The order amount is fixed at creation and never
// recomputed from the variant price again.
func AmountMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// IsPaid reports whether the order reached its terminal paid state
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}
