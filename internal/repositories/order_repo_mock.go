package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"luxe/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Product details on reads are resolved through the given ProductRepository,
// mirroring the Preload the GORM implementation does.
type MockOrderRepository struct {
	orders      map[string]models.Order
	productRepo ProductRepository
	mu          sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(productRepo ProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:      make(map[string]models.Order),
		productRepo: productRepo,
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID with product details resolved.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	resolved := r.resolve(order)
	return &resolved, nil
}

// GetByBuyer returns a buyer's orders, newest first.
func (r *MockOrderRepository) GetByBuyer(buyerID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			orderList = append(orderList, r.resolve(order))
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetBySeller returns orders containing at least one line item whose product
// belongs to the given seller, newest first. This is a scan-and-filter; the
// GORM implementation pushes the same predicate into a join.
func (r *MockOrderRepository) GetBySeller(sellerID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		resolved := r.resolve(order)
		if resolved.ContainsSellerProduct(sellerID) {
			orderList = append(orderList, resolved)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// resolve copies an order and fills in product details for its items.
func (r *MockOrderRepository) resolve(order models.Order) models.Order {
	resolved := order
	resolved.Items = make([]models.OrderItem, len(order.Items))
	copy(resolved.Items, order.Items)
	if r.productRepo != nil {
		for i := range resolved.Items {
			if product, err := r.productRepo.GetByID(resolved.Items[i].ProductID); err == nil {
				resolved.Items[i].Product = product
			}
		}
	}
	return resolved
}
