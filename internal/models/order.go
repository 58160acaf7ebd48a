package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// statusRank orders the forward-only fulfilment chain. Cancelled sits
// outside the chain and is only reachable through cancellation.
var statusRank = map[OrderStatus]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusShipped:    2,
	StatusDelivered:  3,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether a status update from s to next is allowed.
// Updates may only move forward along pending -> processing -> shipped ->
// delivered. Cancellation is not reachable through a status update; it has
// its own path with buyer-ownership rules.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || next == StatusCancelled {
		return false
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// ShippingAddress is embedded into orders so the destination survives
// account edits.
type ShippingAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// OrderItem is a snapshot of a cart line at order time. Price is copied
// from the catalog when the order is created, so later price changes never
// alter past orders.
type OrderItem struct {
	ID        string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string   `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string   `json:"product_id" gorm:"type:varchar(36)"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size"`
	Color     string   `json:"color"`
	Price     float64  `json:"price"`
}

// Order represents a placed order. It is created once from a cart's
// contents and afterwards mutated only through status transitions.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID         string          `json:"buyer_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(16)"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ContainsSellerProduct reports whether at least one line item's product is
// owned by the given seller. Items must have their Product resolved.
func (o *Order) ContainsSellerProduct(sellerID string) bool {
	for _, item := range o.Items {
		if item.Product != nil && item.Product.SellerID == sellerID {
			return true
		}
	}
	return false
}
