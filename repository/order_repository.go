package repository

import (
	"storefront/models"

	"gorm.io/gorm"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	CreateOrder(order *models.Order) error
	FindByUser(userID string) ([]models.Order, error)
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder persists a new order together with its line items in a single
// transaction, so a partial failure cannot leave an order without items.
// GORM saves the Items association with the order row.
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindByUser returns all orders owned by userID, most recent first, with
// line items and the referenced products preloaded for display.
func (r *OrderRepository) FindByUser(userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
