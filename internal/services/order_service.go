package services

import (
	"errors"
	"fmt"
	"log"

	"luxe/internal/models"
	"luxe/internal/repositories"
	"luxe/pkg/events"
)

// OrderService handles the checkout workflow and order lifecycle. An order
// is created once from the buyer's cart and afterwards only moves through
// status transitions.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    *events.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient *events.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// CreateOrder converts the buyer's cart into an order. Prices are always
// re-read from the catalog, never taken from the client. Stock is reserved
// per line with a "stock >= quantity" guard and released again if a later
// line fails. The cart must be non-empty and is cleared on success, so a
// duplicate submit of the same checkout finds an empty cart and fails
// instead of creating a second order.
func (s *OrderService) CreateOrder(buyerID string, items []models.OrderItem, address models.ShippingAddress) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", models.ErrInvalidInput)
	}

	cart, err := s.cartRepo.GetByUser(buyerID)
	if errors.Is(err, models.ErrNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, fmt.Errorf("cart is empty: %w", models.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	var totalAmount float64
	processedItems := make([]models.OrderItem, 0, len(items))

	// reserved tracks stock decrements so far, for compensation on failure.
	reserved := make([]models.OrderItem, 0, len(items))
	release := func() {
		for _, item := range reserved {
			if restoreErr := s.productRepo.RestoreStock(item.ProductID, item.Quantity); restoreErr != nil {
				log.Printf("Warning: failed to restore stock for product %s: %v", item.ProductID, restoreErr)
			}
		}
	}

	for _, item := range items {
		if item.Quantity < 1 {
			release()
			return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrInvalidInput)
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			release()
			return nil, err
		}
		if err := s.productRepo.DecrementStock(product.ID, item.Quantity); err != nil {
			release()
			return nil, err
		}
		reserved = append(reserved, item)

		// Snapshot the catalog price, not whatever the client sent.
		processedItems = append(processedItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Price:     product.Price,
		})
		totalAmount += product.Price * float64(item.Quantity)
	}

	newOrder := &models.Order{
		BuyerID:         buyerID,
		Items:           processedItems,
		TotalAmount:     totalAmount,
		ShippingAddress: address,
		Status:          models.StatusPending,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		release()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.Clear(buyerID); err != nil {
		log.Printf("Warning: failed to clear cart for buyer %s after checkout: %v", buyerID, err)
	}

	s.publish(events.OrderCreated, newOrder)
	return newOrder, nil
}

// GetMyOrders retrieves a buyer's orders, newest first.
func (s *OrderService) GetMyOrders(buyerID string) ([]models.Order, error) {
	return s.orderRepo.GetByBuyer(buyerID)
}

// GetSellerOrders retrieves orders containing at least one line item whose
// product is owned by the seller.
func (s *OrderService) GetSellerOrders(sellerID string) ([]models.Order, error) {
	return s.orderRepo.GetBySeller(sellerID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus moves an order forward along the fulfilment chain.
// Only a seller owning at least one line item may update, and the move must
// be strictly forward; cancellation has its own path.
func (s *OrderService) UpdateOrderStatus(sellerID, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", status, models.ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !order.ContainsSellerProduct(sellerID) {
		return nil, fmt.Errorf("order %s contains no products of this seller: %w", orderID, models.ErrForbidden)
	}
	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, status, models.ErrInvalidTransition)
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	// Re-read so the response carries the persisted row, UpdatedAt included.
	updated, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	s.publish(events.OrderStatusChanged, updated)
	return updated, nil
}

// CancelOrder cancels an order. Only the owning buyer may cancel, and only
// while the order is not yet delivered or already cancelled. Reserved stock
// is released back to the catalog.
func (s *OrderService) CancelOrder(buyerID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, fmt.Errorf("order %s belongs to another buyer: %w", orderID, models.ErrForbidden)
	}
	if order.Status.Terminal() {
		return nil, fmt.Errorf("cannot cancel a %s order: %w", order.Status, models.ErrInvalidTransition)
	}

	if err := s.orderRepo.UpdateStatus(orderID, models.StatusCancelled); err != nil {
		return nil, err
	}
	// Re-read so the response carries the persisted row, UpdatedAt included.
	updated, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range updated.Items {
		if err := s.productRepo.RestoreStock(item.ProductID, item.Quantity); err != nil {
			log.Printf("Warning: failed to restore stock for product %s on cancellation: %v", item.ProductID, err)
		}
	}

	s.publish(events.OrderCancelled, updated)
	return updated, nil
}

// publish sends an order lifecycle event. Publishing failures are logged,
// never surfaced to the caller; the order change already happened.
func (s *OrderService) publish(eventType string, order *models.Order) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.PublishOrderEvent(events.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		BuyerID:     order.BuyerID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}
