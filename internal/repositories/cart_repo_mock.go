package repositories

import (
	"fmt"
	"sync"
	"time"

	"luxe/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Product details on reads are resolved through the given ProductRepository,
// mirroring the Preload the GORM implementation does.
type MockCartRepository struct {
	carts       map[string]models.Cart // keyed by user ID
	productRepo ProductRepository
	mu          sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(productRepo ProductRepository) *MockCartRepository {
	return &MockCartRepository{
		carts:       make(map[string]models.Cart),
		productRepo: productRepo,
	}
}

// GetByUser returns a user's cart with product details resolved.
func (r *MockCartRepository) GetByUser(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, models.ErrNotFound)
	}

	resolved := cart
	resolved.Items = make([]models.CartItem, len(cart.Items))
	copy(resolved.Items, cart.Items)
	if r.productRepo != nil {
		for i := range resolved.Items {
			if product, err := r.productRepo.GetByID(resolved.Items[i].ProductID); err == nil {
				resolved.Items[i].Product = product
			}
		}
	}
	return &resolved, nil
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = time.Now()
	r.carts[cart.UserID] = *cart
	return nil
}

// AddItem appends a line item to its cart.
func (r *MockCartRepository) AddItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	for userID, cart := range r.carts {
		if cart.ID == item.CartID {
			cart.Items = append(cart.Items, *item)
			cart.UpdatedAt = time.Now()
			r.carts[userID] = cart
			return nil
		}
	}
	return fmt.Errorf("cart with ID %s: %w", item.CartID, models.ErrNotFound)
}

// UpdateItemQuantity sets the quantity of an existing line item.
func (r *MockCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				cart.UpdatedAt = time.Now()
				r.carts[userID] = cart
				return nil
			}
		}
	}
	return fmt.Errorf("cart item with ID %s: %w", itemID, models.ErrNotFound)
}

// RemoveItem deletes a single line item from a cart.
func (r *MockCartRepository) RemoveItem(cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, cart := range r.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				cart.UpdatedAt = time.Now()
				r.carts[userID] = cart
				return nil
			}
		}
	}
	return fmt.Errorf("cart item with ID %s: %w", itemID, models.ErrNotFound)
}

// Clear removes a user's cart entirely. Clearing an absent cart is a no-op.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
