package services

import (
	"errors"
	"fmt"

	"luxe/internal/models"
	"luxe/internal/repositories"
)

// CartService handles business logic for the single active cart each buyer
// has. Carts are created implicitly on the first add.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product into the user's cart. A line with the same
// (product, size, color) already in the cart is merged by summing
// quantities rather than appended again. Returns the full resolved item
// list.
func (s *CartService) AddItem(userID, productID string, quantity int, size, color string) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrInvalidInput)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if errors.Is(err, models.ErrNotFound) {
		cart = &models.Cart{UserID: userID}
		if err := s.cartRepo.Create(cart); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	merged := false
	for _, item := range cart.Items {
		if item.ProductID == productID && item.Size == size && item.Color == color {
			if err := s.cartRepo.UpdateItemQuantity(item.ID, item.Quantity+quantity); err != nil {
				return nil, err
			}
			merged = true
			break
		}
	}
	if !merged {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		}
		if err := s.cartRepo.AddItem(item); err != nil {
			return nil, err
		}
	}

	return s.GetCart(userID)
}

// RemoveItem deletes one line item from the user's cart.
func (s *CartService) RemoveItem(userID, itemID string) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveItem(cart.ID, itemID)
}

// ClearCart empties the user's cart. Called explicitly by the user and
// automatically after a successful checkout.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.Clear(userID)
}

// GetCart returns the user's cart items with product details resolved. A
// user without a cart gets an empty list, not an error.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if errors.Is(err, models.ErrNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}
