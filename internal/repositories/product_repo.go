package repositories

import (
	"luxe/internal/models"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	GetAll(filter models.ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySeller(sellerID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock reserves stock for an order with a "stock >= quantity"
	// guard. RestoreStock is the compensating release used on cancellation.
	DecrementStock(id string, quantity int) error
	RestoreStock(id string, quantity int) error
}
