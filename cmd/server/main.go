package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"soshopay-mockapi/internal/adapters/http/middleware"
	"soshopay-mockapi/internal/adapters/http/routes"
	"soshopay-mockapi/internal/adapters/persistence/memstore"
	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/config"
	"soshopay-mockapi/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "soshopay-mockapi/docs" // Swagger docs
)

// @title SoshoPay Mock API
// @version 1.0
// @description Mock backend for the SoshoPay mobile lending app
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@soshopay.co.zw

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the record store
	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize store: %v", err)
	}

	// Start cron service (payment settlement + overdue reminders)
	cronService := services.NewCronService(store.Loans, store.Payments, store.Notifications)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SoshoPay Mock API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildStore selects the record store implementation from configuration
func buildStore(cfg *config.Config) (*repositories.Store, error) {
	if cfg.Store.Driver == "mysql" {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}

		if err := models.AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Println("✅ Database migration completed")

		if err := config.SeedDatabase(db, config.DefaultDataset()); err != nil {
			log.Printf("⚠️ Warning: Failed to seed database: %v", err)
		}

		return repositories.NewGormStore(db), nil
	}

	data, err := memstore.LoadDataset(cfg.Store.DatasetPath)
	if err != nil {
		log.Printf("⚠️ Dataset file not loaded (%v), using built-in seed data", err)
		data = config.DefaultDataset()
	}
	log.Printf("✅ In-memory store ready [dataset: %s]", cfg.Store.DatasetPath)

	return memstore.New(data).Repositories(), nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")

	if config.DB != nil {
		config.CloseDatabase()
	}
}
