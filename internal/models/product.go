package models

import "gorm.io/gorm"

// Promotional badges used for storefront sectioning. No business logic
// depends on them.
const (
	BadgeNew      = "NEW"
	BadgeTrending = "TRENDING"
	BadgeSale     = "SALE"
)

// Product represents a listing owned by a seller.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Size        []string `json:"size" gorm:"serializer:json"`
	Color       []string `json:"color" gorm:"serializer:json"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Badge       string   `json:"badge" validate:"omitempty,oneof=NEW TRENDING SALE"`
	Discount    int      `json:"discount" validate:"gte=0,lte=100"`
	Image       string   `json:"image"`
	SellerID    string   `json:"seller_id" gorm:"index;type:varchar(36)"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductFilter narrows catalog listings. Category matches exactly, Search
// is a case-insensitive substring match on the product name.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductUpdate carries a partial update to a listing. Pointer fields
// distinguish "absent" from a genuine zero (stock 0, discount 0).
type ProductUpdate struct {
	Name        string   `json:"name" validate:"omitempty,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       float64  `json:"price" validate:"omitempty,gt=0"`
	Category    string   `json:"category"`
	Size        []string `json:"size"`
	Color       []string `json:"color"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Badge       string   `json:"badge" validate:"omitempty,oneof=NEW TRENDING SALE"`
	Discount    *int     `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Image       string   `json:"image"`
}
