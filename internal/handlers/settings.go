package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/gofiber/fiber/v2"
)

// GetSettings handles GET /api/settings
// @Summary Get the company settings document
// @Tags Settings
// @Produce json
// @Success 200 {object} models.AppSettings
// @Router /settings [get]
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Settings)
}

// PatchSettings handles PATCH /api/settings
// @Summary Merge a partial settings update
// @Description Absent fields keep their current values.
// @Tags Settings
// @Accept json
// @Produce json
// @Param patch body models.SettingsPatch true "Partial settings"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /settings [patch]
func (h *Handler) PatchSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := h.parseBody(c, &patch); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.UpdateSettings{Patch: patch})
	return h.respond(c, result, nil)
}
