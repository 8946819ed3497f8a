package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/config"
	"github.com/speccs/assetdb/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the greeting, db_check, and health routes
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Greeting handles GET /
func (h *HealthHandler) Greeting(c *fiber.Ctx) error {
	return c.SendString("Hello, Speccs World!")
}

// DBCheck handles GET /db_check with a plain-text result. The failure
// cause stays in the server log; the caller gets a generic message.
func (h *HealthHandler) DBCheck(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	if result.Status != "healthy" {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}
	return c.SendString("Database connection successful!")
}

// Health handles GET /api/health with the full JSON result
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 500 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(result)
}
