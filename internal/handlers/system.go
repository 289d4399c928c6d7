package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/config"
	"github.com/TKNasansor/TKNLIFT/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SystemHandler handles health and state export routes.
type SystemHandler struct {
	*Handler
	Config *config.Config
	DB     *gorm.DB
}

// Health handles GET /api/health
// @Summary Service health check
// @Tags System
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}

// ExportState handles GET /api/state
// @Summary Export the full business state
// @Description Returns the durable state document, session fields excluded.
// @Tags System
// @Produce json
// @Success 200 {object} store.State
// @Router /state [get]
func (h *SystemHandler) ExportState(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Persistable())
}
