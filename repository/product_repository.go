package repository

import (
	"errors"
	"storefront/models"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id does not exist in the
// catalog. Callers use it to tell "not found" apart from other failures.
var ErrProductNotFound = errors.New("product not found")

// IProductRepository defines the interface for catalog read access.
type IProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
}

// ProductRepository implements IProductRepository for GORM.
type ProductRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{DB: db}
}

// FindAll returns every product in insertion order.
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID retrieves a product by its ID, or ErrProductNotFound.
func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
