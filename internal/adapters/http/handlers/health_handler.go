package handlers

import (
	"soshopay-mockapi/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 SoshoPay Mock API is running",
		"mode":    config.AppConfig.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API health
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":   "healthy",
			"store": config.AppConfig.Store.Driver,
		},
	})
}
