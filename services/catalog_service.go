package services

import (
	"fmt"
	"storefront/models"
	"storefront/repository"
)

// ICatalogService defines the interface for catalog read access.
type ICatalogService interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
}

// CatalogService implements ICatalogService.
type CatalogService struct {
	productRepo repository.IProductRepository
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(repo repository.IProductRepository) ICatalogService {
	return &CatalogService{productRepo: repo}
}

// ListProducts returns all catalog products.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns the product with the given id. The repository's
// ErrProductNotFound passes through wrapped, so errors.Is still matches.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}
