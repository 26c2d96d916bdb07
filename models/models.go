package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. The catalog is seeded at startup and treated
// as read-only by the application afterwards.
type Product struct {
	gorm.Model
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `json:"image_url" gorm:"not null"`
}

// Order represents a single order placed by a user. The user is identified
// by the opaque subject string issued by the identity provider; there is no
// local user table.
type Order struct {
	gorm.Model
	UserID string          `json:"user_id" gorm:"index;not null"`
	Total  decimal.Decimal `json:"total" gorm:"type:decimal(10,2);default:0.00"`
	Status string          `json:"status" gorm:"not null;default:completed"`
	Items  []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"` // Has Many association
}

// OrderItem is a single line of an order. Price is a snapshot of the
// product's price at order-creation time; the Product association carries
// the product's current display fields for order history rendering and never
// feeds back into Price or Quantity.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"order_id"` // Foreign key for Order
	ProductID uint            `json:"product_id" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Product   Product         `json:"product" gorm:"foreignKey:ProductID"`
}

// OrderItemRequest is one line of a create-order request.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"` // must be >= 1
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"` // at least one item
}
