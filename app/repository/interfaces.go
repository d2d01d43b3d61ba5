package repository

import (
	"github.com/ManuelReschke/PixelMart/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

// ProductRepository defines the interface for catalog database operations
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	List(offset, limit int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

// OrderRepository defines the interface for order-related database operations.
// MarkPaid and MarkFailed are conditional updates: they only apply while the
// order is still pending and report whether this call won the transition.
// Only MarkPaid records the gateway payment id; failed orders never carry one.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByGatewayOrderID(gatewayOrderID string) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	MarkPaid(gatewayOrderID, gatewayPaymentID string) (bool, error)
	MarkFailed(gatewayOrderID string) (bool, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Product: NewProductRepository(db),
		Order:   NewOrderRepository(db),
	}
}
