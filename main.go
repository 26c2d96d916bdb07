package main

import (
	"log"

	"storefront/auth"
	"storefront/config"
	"storefront/controllers"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	// Load configuration from config/config.yml
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database connection
	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")
	err = db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	log.Println("Database migration complete.")

	// Seed the catalog when empty
	seedProducts(db)

	// Repository layer
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Event publisher
	publisher, err := services.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Fatalf("Failed to initialize Kafka publisher: %v", err)
	}

	// Service layer
	catalogSvc := services.NewCatalogService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, publisher)

	// Controller layer
	productCtrl := controllers.NewProductController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Authentication is delegated to the identity provider; the app only
	// verifies tokens it issued and extracts the subject.
	authenticator := auth.NewJWTAuthenticator(cfg.Auth.JWTSecret)
	authRequired := auth.Middleware(authenticator)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// API routes
	app.Get("/api/products", productCtrl.ListProducts)
	app.Get("/api/products/:id", productCtrl.GetProduct)
	app.Post("/api/orders", authRequired, orderCtrl.CreateOrder)
	app.Get("/api/orders", authRequired, orderCtrl.ListOrders)

	log.Printf("Server is starting on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(cfg.Server.Port))
}

// seedProducts creates the initial catalog when the products table is empty.
// The catalog is read-only afterwards.
func seedProducts(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count products for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Premium noise cancelling headphones",
			Price:       decimal.RequireFromString("199.99"),
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracker and smart notifications",
			Price:       decimal.RequireFromString("149.99"),
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "Clicky mechanical keyboard for typing",
			Price:       decimal.RequireFromString("89.99"),
			ImageURL:    "https://images.unsplash.com/photo-1587829741301-dc798b91a603?w=800&q=80",
		},
		{
			Name:        "Laptop Stand",
			Description: "Ergonomic aluminum laptop stand",
			Price:       decimal.RequireFromString("49.99"),
			ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=800&q=80",
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Name, err)
		} else {
			log.Printf("Seeded product: %s (%s)", product.Name, product.Price)
		}
	}
	log.Println("Catalog seeding finished.")
}
