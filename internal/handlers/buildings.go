package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"
	"github.com/TKNasansor/TKNLIFT/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ListBuildings handles GET /api/buildings
// @Summary List buildings
// @Description List all managed buildings
// @Tags Buildings
// @Produce json
// @Success 200 {array} models.Building
// @Router /buildings [get]
func (h *Handler) ListBuildings(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Buildings)
}

// GetBuilding handles GET /api/buildings/:id
// @Summary Get a building
// @Tags Buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} models.Building
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [get]
func (h *Handler) GetBuilding(c *fiber.Ctx) error {
	st := h.Store.State()
	for _, b := range st.Buildings {
		if b.ID == c.Params("id") {
			return c.Status(fiber.StatusOK).JSON(b)
		}
	}
	return utils.NotFoundResponse(c, "Building not found")
}

// CreateBuilding handles POST /api/buildings
// @Summary Add a building
// @Tags Buildings
// @Accept json
// @Produce json
// @Param building body models.Building true "Building"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /buildings [post]
func (h *Handler) CreateBuilding(c *fiber.Ctx) error {
	var body buildingBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddBuilding{Building: body.toModel()})
	return h.respond(c, result, nil)
}

// UpdateBuilding handles PUT /api/buildings/:id
// @Summary Update a building
// @Tags Buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param building body models.Building true "Building"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /buildings/{id} [put]
func (h *Handler) UpdateBuilding(c *fiber.Ctx) error {
	var body buildingBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	building := body.toModel()
	building.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdateBuilding{Building: building})
	return h.respond(c, result, nil)
}

// DeleteBuilding handles DELETE /api/buildings/:id
// @Summary Delete a building
// @Tags Buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /buildings/{id} [delete]
func (h *Handler) DeleteBuilding(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeleteBuilding{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// buildingBody is the request shape for create/update. The debt and
// maintenance flags ride along so an import can restore a building wholesale.
type buildingBody struct {
	Name                   string            `json:"name" validate:"required"`
	MaintenanceFee         types.FlexDecimal `json:"maintenanceFee"`
	ElevatorCount          int               `json:"elevatorCount" validate:"gte=0"`
	Debt                   types.FlexDecimal `json:"debt"`
	ContactInfo            string            `json:"contactInfo"`
	Address                models.Address    `json:"address"`
	Notes                  string            `json:"notes"`
	IsMaintained           bool              `json:"isMaintained"`
	LastMaintenanceDate    string            `json:"lastMaintenanceDate"`
	LastMaintenanceTime    string            `json:"lastMaintenanceTime"`
	Label                  models.Label      `json:"label"`
	BuildingResponsible    string            `json:"buildingResponsible"`
	MaintenanceReceiptNote string            `json:"maintenanceReceiptNote"`
}

func (b buildingBody) toModel() models.Building {
	return models.Building{
		Name:                   b.Name,
		MaintenanceFee:         b.MaintenanceFee.Decimal(),
		ElevatorCount:          b.ElevatorCount,
		Debt:                   b.Debt.Decimal(),
		ContactInfo:            b.ContactInfo,
		Address:                b.Address,
		Notes:                  b.Notes,
		IsMaintained:           b.IsMaintained,
		LastMaintenanceDate:    b.LastMaintenanceDate,
		LastMaintenanceTime:    b.LastMaintenanceTime,
		Label:                  b.Label,
		BuildingResponsible:    b.BuildingResponsible,
		MaintenanceReceiptNote: b.MaintenanceReceiptNote,
	}
}
