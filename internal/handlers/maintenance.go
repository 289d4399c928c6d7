package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"
	"github.com/TKNasansor/TKNLIFT/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ToggleMaintenance handles POST /api/buildings/:id/maintenance
// @Summary Toggle or complete a maintenance visit
// @Description With showReceipt the visit is billed and the rendered receipt
// @Description is returned; without it only the maintained flag flips.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body toggleMaintenanceBody true "Options"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/maintenance [post]
func (h *Handler) ToggleMaintenance(c *fiber.Ctx) error {
	var body toggleMaintenanceBody
	if len(c.Body()) > 0 {
		if err := h.parseBody(c, &body); err != nil {
			return err
		}
	}
	result := h.Store.Dispatch(store.ToggleMaintenance{
		BuildingID:  c.Params("id"),
		ShowReceipt: body.ShowReceipt,
	})
	var extra fiber.Map
	if result.ReceiptHTML != "" {
		extra = fiber.Map{"receiptHtml": result.ReceiptHTML}
	}
	return h.respond(c, result, extra)
}

// RevertMaintenance handles POST /api/buildings/:id/maintenance/revert
// @Summary Revert the latest maintenance visit
// @Tags Maintenance
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/maintenance/revert [post]
func (h *Handler) RevertMaintenance(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.RevertMaintenance{BuildingID: c.Params("id")})
	return h.respond(c, result, nil)
}

// ResetAllMaintenance handles POST /api/maintenance/reset
// @Summary Reset the maintained flag on every building
// @Tags Maintenance
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /maintenance/reset [post]
func (h *Handler) ResetAllMaintenance(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.ResetAllMaintenance{})
	return h.respond(c, result, nil)
}

// ListMaintenanceRecords handles GET /api/maintenance/records
// @Summary List maintenance records
// @Tags Maintenance
// @Produce json
// @Success 200 {array} models.MaintenanceRecord
// @Router /maintenance/records [get]
func (h *Handler) ListMaintenanceRecords(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().MaintenanceRecords)
}

// CreateMaintenanceRecord handles POST /api/maintenance/records
// @Summary Backfill a maintenance record
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param body body maintenanceRecordBody true "Record"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /maintenance/records [post]
func (h *Handler) CreateMaintenanceRecord(c *fiber.Ctx) error {
	var body maintenanceRecordBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddMaintenanceRecord{
		BuildingID:      body.BuildingID,
		PerformedBy:     body.PerformedBy,
		MaintenanceDate: body.MaintenanceDate,
		MaintenanceTime: body.MaintenanceTime,
		ElevatorCount:   body.ElevatorCount,
		TotalFee:        body.TotalFee.Decimal(),
		Notes:           body.Notes,
	})
	return h.respond(c, result, nil)
}

// ListMaintenanceHistory handles GET /api/maintenance/history
// @Summary List maintenance history
// @Tags Maintenance
// @Produce json
// @Success 200 {array} models.MaintenanceHistory
// @Router /maintenance/history [get]
func (h *Handler) ListMaintenanceHistory(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().MaintenanceHistory)
}

// ListArchivedReceipts handles GET /api/receipts
// @Summary List archived receipts
// @Tags Maintenance
// @Produce json
// @Success 200 {array} models.ArchivedReceipt
// @Router /receipts [get]
func (h *Handler) ListArchivedReceipts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().ArchivedReceipts)
}

// LatestReceipt handles GET /api/buildings/:id/receipts/latest
// @Summary Get the newest archived receipt for a building
// @Tags Maintenance
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} models.ArchivedReceipt
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/receipts/latest [get]
func (h *Handler) LatestReceipt(c *fiber.Ctx) error {
	receipt, ok := h.Store.State().LatestArchivedReceipt(c.Params("id"))
	if !ok {
		return utils.NotFoundResponse(c, "No archived receipt for building")
	}
	return c.Status(fiber.StatusOK).JSON(receipt)
}

type toggleMaintenanceBody struct {
	ShowReceipt bool `json:"showReceipt"`
}

type maintenanceRecordBody struct {
	BuildingID      string            `json:"buildingId" validate:"required"`
	PerformedBy     string            `json:"performedBy"`
	MaintenanceDate string            `json:"maintenanceDate" validate:"required"`
	MaintenanceTime string            `json:"maintenanceTime"`
	ElevatorCount   int               `json:"elevatorCount" validate:"gte=0"`
	TotalFee        types.FlexDecimal `json:"totalFee"`
	Notes           string            `json:"notes"`
}
