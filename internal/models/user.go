package models

import "gorm.io/gorm"

// User roles. Buyers shop the storefront, sellers manage listings and
// fulfil orders through the dashboard.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User represents a marketplace account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(16);default:buyer" validate:"omitempty,oneof=buyer seller"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
