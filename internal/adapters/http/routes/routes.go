package routes

import (
	"soshopay-mockapi/internal/adapters/http/handlers"
	"soshopay-mockapi/internal/adapters/http/middleware"
	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/config"
	"soshopay-mockapi/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *repositories.Store, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(store.Clients, cfg)
	clientService := services.NewClientService(store.Clients)
	calculatorService := services.NewCalculatorService(store.Products)
	loanService := services.NewLoanService(store.Loans, store.SettledLoans, calculatorService)
	paymentService := services.NewPaymentService(store.Loans, store.Payments)
	notificationService := services.NewNotificationService(store.Notifications)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	loanHandler := handlers.NewLoanHandler(loanService, calculatorService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	clientRoutes := api.Group("/mobile/client")
	setupClientRoutes(clientRoutes, authHandler, clientHandler, loanHandler)

	paymentRoutes := api.Group("/payments")
	paymentRoutes.Use(middleware.AuthMiddleware())
	setupPaymentRoutes(paymentRoutes, paymentHandler)

	notificationRoutes := api.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())
	setupNotificationRoutes(notificationRoutes, notificationHandler)
}

// setupClientRoutes configures mobile client routes
func setupClientRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	loanHandler *handlers.LoanHandler,
) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	router.Post("/set-pin", authHandler.SetPIN)
	router.Post("/refresh-token", authHandler.RefreshToken)

	// Public quote calculators
	router.Post("/loans/cash/calculate", loanHandler.CashQuote)
	router.Post("/loans/paygo/calculate", loanHandler.PayGoQuote)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(), clientHandler.Me)
	router.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)
	router.Post("/pin", middleware.AuthMiddleware(), authHandler.ChangePIN)

	loanRoutes := router.Group("/loans")
	loanRoutes.Use(middleware.AuthMiddleware())
	setupLoanRoutes(loanRoutes, loanHandler)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/", handler.List)

	// Settled routes must register before the :id wildcard
	router.Get("/settled", handler.ListSettled)
	router.Get("/settled/:id", handler.GetSettled)

	router.Post("/cash/apply", handler.ApplyCash)
	router.Post("/paygo/apply", handler.ApplyPayGo)

	router.Get("/:id", handler.Get)
}

// setupPaymentRoutes configures payment routes
func setupPaymentRoutes(router fiber.Router, handler *handlers.PaymentHandler) {
	router.Get("/dashboard", handler.Dashboard)
	router.Get("/history", handler.History)
	router.Get("/methods", handler.Methods)
	router.Post("/process", handler.Process)
	router.Get("/receipt/:receiptNumber", handler.Receipt)
	router.Get("/:paymentId/status", handler.Status)
}

// setupNotificationRoutes configures notification routes
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	router.Get("/", handler.List)
	router.Get("/unread/count", handler.UnreadCount)
	router.Put("/mark-all-read", handler.MarkAllRead)
	router.Put("/:id/read", handler.MarkRead)
	router.Delete("/:id", handler.Delete)
}
