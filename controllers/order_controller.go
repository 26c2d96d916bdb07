package controllers

import (
	"errors"
	"fmt"
	"log"

	"storefront/auth"
	"storefront/models"
	"storefront/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders. Routes using it
// must be gated by auth.Middleware, which stashes the subject identifier.
type OrderController struct {
	orderService services.IOrderService
	validate     *validator.Validate
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{
		orderService: svc,
		validate:     validator.New(),
	}
}

// CreateOrder handles POST /api/orders.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	userID := auth.Subject(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var request models.CreateOrderRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := c.validate.Struct(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": firstValidationMessage(err)})
	}

	order, err := c.orderService.CreateOrder(userID, request.Items)
	if errors.Is(err, services.ErrNoItems) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		log.Printf("Failed to create order for user %s: %v", userID, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// ListOrders handles GET /api/orders.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	userID := auth.Subject(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	orders, err := c.orderService.ListOrders(userID)
	if err != nil {
		log.Printf("Failed to list orders for user %s: %v", userID, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return ctx.JSON(orders)
}

// firstValidationMessage reduces a validation error to the first failing
// field's message, which is what the 400 body carries.
func firstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
	return err.Error()
}
