package services

import (
	"errors"
	"fmt"
	"log"

	"storefront/models"
	"storefront/repository"

	"github.com/shopspring/decimal"
)

// ErrNoItems is returned when an order is requested with no line items.
// Normally schema validation rejects such a request before the service runs.
var ErrNoItems = errors.New("order must contain at least one item")

// skipUnknownProducts controls what happens when a requested product id does
// not exist in the catalog: true drops the line silently, matching the
// behavior this system inherited. Flip to false to fail the whole order
// instead. Pending a business decision, keep true.
const skipUnknownProducts = true

// IOrderService defines the interface for order-related business logic.
type IOrderService interface {
	CreateOrder(userID string, items []models.OrderItemRequest) (*models.Order, error)
	ListOrders(userID string) ([]models.Order, error)
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo   repository.IOrderRepository
	productRepo repository.IProductRepository
	publisher   IEventPublisher
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo repository.IOrderRepository, productRepo repository.IProductRepository, publisher IEventPublisher) IOrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder resolves current catalog prices for the requested items,
// computes the total, and persists the order with its line items in one
// transaction. Each item's price is a snapshot taken here; later catalog
// changes do not affect it.
func (s *OrderService) CreateOrder(userID string, items []models.OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.FindByID(item.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			if skipUnknownProducts {
				continue
			}
			return nil, fmt.Errorf("unknown product %d: %w", item.ProductID, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", item.ProductID, err)
		}

		lineAmount := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineAmount)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	order := &models.Order{
		UserID: userID,
		Total:  total.Round(2),
		Status: "completed", // no pending/payment states exist
		Items:  orderItems,
	}

	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order to database: %w", err)
	}

	// The order is durable at this point; a publish failure must not turn
	// a created order into an error response.
	if err := s.publisher.PublishOrderPlaced(order); err != nil {
		log.Printf("Order %d created but event publish failed: %v", order.ID, err)
	}

	// The creation response carries the order without nested items.
	created := *order
	created.Items = nil
	return &created, nil
}

// ListOrders returns the user's orders, most recent first, with line items
// and current product display fields attached.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}
