// Package cart holds the client-side shopping cart state: a mapping from
// product id to a product snapshot and quantity, persisted on every mutation
// and never synchronized to the server until checkout.
package cart

import (
	"fmt"
	"sort"

	"storefront/models"

	"github.com/shopspring/decimal"
)

// Item is a cart entry: a product snapshot taken when the product was added,
// plus the quantity currently requested.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Storage persists cart state across sessions. The in-browser original uses
// local storage; embedders plug in whatever their shell provides.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// MemoryStorage is a Storage that keeps items in process memory. It is the
// default for tests and for shells without durable state.
type MemoryStorage struct {
	items []Item
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the last saved items.
func (s *MemoryStorage) Load() ([]Item, error) {
	return s.items, nil
}

// Save replaces the stored items.
func (s *MemoryStorage) Save(items []Item) error {
	s.items = append([]Item(nil), items...)
	return nil
}

// Cart is an explicitly constructed cart state container. It is owned by a
// single client session and mutated by one logical writer at a time, so it
// performs no locking of its own.
type Cart struct {
	storage Storage
	items   map[uint]*Item
	order   []uint // product ids in insertion order, for stable rendering
}

// New creates a Cart backed by storage and loads any previously saved state.
func New(storage Storage) (*Cart, error) {
	c := &Cart{
		storage: storage,
		items:   make(map[uint]*Item),
	}
	saved, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart state: %w", err)
	}
	for _, item := range saved {
		item := item
		c.items[item.Product.ID] = &item
		c.order = append(c.order, item.Product.ID)
	}
	return c, nil
}

// AddItem puts the product in the cart with quantity 1, or increments the
// existing entry's quantity by 1.
func (c *Cart) AddItem(product models.Product) error {
	if existing, ok := c.items[product.ID]; ok {
		existing.Quantity++
		return c.persist()
	}
	c.items[product.ID] = &Item{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
	return c.persist()
}

// RemoveItem deletes the entry for productID; no-op if absent.
func (c *Cart) RemoveItem(productID uint) error {
	if _, ok := c.items[productID]; !ok {
		return nil
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return c.persist()
}

// SetQuantity sets the quantity for productID. A quantity below 1 is a
// no-op: the item stays in the cart with its prior quantity. Removal is
// only ever explicit via RemoveItem.
func (c *Cart) SetQuantity(productID uint, quantity int) error {
	if quantity < 1 {
		return nil
	}
	item, ok := c.items[productID]
	if !ok {
		return nil
	}
	item.Quantity = quantity
	return c.persist()
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() error {
	c.items = make(map[uint]*Item)
	c.order = nil
	return c.persist()
}

// Total recomputes the cart total from the stored product snapshots, not
// from any live catalog price.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// Items returns the cart entries in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		if item, ok := c.items[id]; ok {
			items = append(items, *item)
		}
	}
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// CheckoutItems converts the cart contents into the order-creation request
// lines, sorted by product id for a deterministic request body.
func (c *Cart) CheckoutItems() []models.OrderItemRequest {
	reqs := make([]models.OrderItemRequest, 0, len(c.items))
	for id, item := range c.items {
		reqs = append(reqs, models.OrderItemRequest{ProductID: id, Quantity: item.Quantity})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].ProductID < reqs[j].ProductID })
	return reqs
}

func (c *Cart) persist() error {
	if err := c.storage.Save(c.Items()); err != nil {
		return fmt.Errorf("failed to persist cart state: %w", err)
	}
	return nil
}
