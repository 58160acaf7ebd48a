package repositories

import (
	"luxe/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; they only move through status transitions.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByBuyer(buyerID string) ([]models.Order, error)
	GetBySeller(sellerID string) ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
}
