package repositories

import (
	"luxe/internal/models"
)

// CartRepository defines the interface for cart data access. A buyer has at
// most one cart; lookups are keyed by user ID.
type CartRepository interface {
	GetByUser(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	AddItem(item *models.CartItem) error
	UpdateItemQuantity(itemID string, quantity int) error
	RemoveItem(cartID, itemID string) error
	Clear(userID string) error
}
