// health.go
//
// Health and key verification routes.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goldtek/quotetrack/internal/config"
	"github.com/goldtek/quotetrack/internal/services"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// HealthHandler handles health check routes
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// HealthCheck handles GET /api/health
// @Summary Health check
// @Description Service, database, and analyzer health; unauthenticated
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(result)
}

// VerifyKey handles GET /api/verify-key
// @Summary Verify the API key
// @Description Returns success when the presented key passed the auth middleware
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /verify-key [get]
func (h *HealthHandler) VerifyKey(c *fiber.Ctx) error {
	return utils.MutationSuccessResponse(c, fiber.Map{"valid": true})
}
