package controllers

import (
	"errors"
	"log"

	"storefront/repository"
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	catalogService services.ICatalogService
}

// NewProductController creates a new ProductController instance.
func NewProductController(svc services.ICatalogService) *ProductController {
	return &ProductController{catalogService: svc}
}

// ListProducts handles GET /api/products.
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	products, err := c.catalogService.ListProducts()
	if err != nil {
		log.Printf("Failed to list products: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.JSON(products)
}

// GetProduct handles GET /api/products/:id. A non-numeric id is treated the
// same as an unknown one.
func (c *ProductController) GetProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	product, err := c.catalogService.GetProduct(uint(id))
	if errors.Is(err, repository.ErrProductNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	if err != nil {
		log.Printf("Failed to get product %d: %v", id, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.JSON(product)
}
