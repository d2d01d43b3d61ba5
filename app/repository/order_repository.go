package repository

import (
	"github.com/ManuelReschke/PixelMart/app/models"
	"gorm.io/gorm"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID retrieves an order with its product and user by ID
func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Product").Preload("User").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByGatewayOrderID retrieves an order by its gateway order reference
func (r *orderRepository) GetByGatewayOrderID(gatewayOrderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("gateway_order_id = ?", gatewayOrderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByUserID retrieves all orders of a user, newest first, with products preloaded
func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// MarkPaid transitions an order to paid and records the gateway payment ID.
// The update predicate includes status = pending, so of two concurrent
// deliveries for the same gateway order only one sees RowsAffected > 0.
// A paid order is never touched again.
func (r *orderRepository) MarkPaid(gatewayOrderID, gatewayPaymentID string) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":             models.OrderStatusPaid,
			"gateway_payment_id": gatewayPaymentID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkFailed transitions an order to failed, only while it is still pending.
// The gateway payment id is not stored; it belongs to successful payments only.
func (r *orderRepository) MarkFailed(gatewayOrderID string) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status": models.OrderStatusFailed,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of orders
func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}
