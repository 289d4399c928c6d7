package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"
	"github.com/gofiber/fiber/v2"
)

// ListParts handles GET /api/parts
// @Summary List parts
// @Tags Parts
// @Produce json
// @Success 200 {array} models.Part
// @Router /parts [get]
func (h *Handler) ListParts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Parts)
}

// CreatePart handles POST /api/parts
// @Summary Add a part
// @Tags Parts
// @Accept json
// @Produce json
// @Param part body models.Part true "Part"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /parts [post]
func (h *Handler) CreatePart(c *fiber.Ctx) error {
	var body partBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddPart{Part: body.toModel()})
	return h.respond(c, result, nil)
}

// UpdatePart handles PUT /api/parts/:id
// @Summary Update a part
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID"
// @Param part body models.Part true "Part"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /parts/{id} [put]
func (h *Handler) UpdatePart(c *fiber.Ctx) error {
	var body partBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	part := body.toModel()
	part.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdatePart{Part: part})
	return h.respond(c, result, nil)
}

// DeletePart handles DELETE /api/parts/:id
// @Summary Delete a part
// @Tags Parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /parts/{id} [delete]
func (h *Handler) DeletePart(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeletePart{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// IncreasePrices handles POST /api/parts/increase-prices
// @Summary Raise all part prices by a percentage
// @Description Every part price is raised and rounded to the nearest 50
// @Tags Parts
// @Accept json
// @Produce json
// @Param body body increasePricesBody true "Percentage"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /parts/increase-prices [post]
func (h *Handler) IncreasePrices(c *fiber.Ctx) error {
	var body increasePricesBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.IncreasePrices{Percentage: body.Percentage.Decimal()})
	return h.respond(c, result, nil)
}

// InstallPart handles POST /api/buildings/:id/parts
// @Summary Install an inventory part in a building
// @Description Decrements stock and raises the building debt
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body installPartBody true "Installation"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/parts [post]
func (h *Handler) InstallPart(c *fiber.Ctx) error {
	var body installPartBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.InstallPart{
		BuildingID:  c.Params("id"),
		PartID:      body.PartID,
		Quantity:    body.Quantity,
		InstallDate: body.InstallDate,
	})
	return h.respond(c, result, nil)
}

// InstallManualPart handles POST /api/buildings/:id/manual-parts
// @Summary Install a free-text part in a building
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body installManualPartBody true "Installation"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/manual-parts [post]
func (h *Handler) InstallManualPart(c *fiber.Ctx) error {
	var body installManualPartBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.InstallManualPart{
		BuildingID:  c.Params("id"),
		PartName:    body.PartName,
		Quantity:    body.Quantity,
		UnitPrice:   body.UnitPrice.Decimal(),
		TotalPrice:  body.TotalPrice.Decimal(),
		InstallDate: body.InstallDate,
	})
	return h.respond(c, result, nil)
}

// MarkPartAsPaid handles POST /api/installations/:id/paid
// @Summary Mark a part installation paid
// @Tags Parts
// @Accept json
// @Produce json
// @Param id path string true "Installation ID"
// @Param body body markPaidBody true "Installation kind"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /installations/{id}/paid [post]
func (h *Handler) MarkPartAsPaid(c *fiber.Ctx) error {
	var body markPaidBody
	if len(c.Body()) > 0 {
		if err := h.parseBody(c, &body); err != nil {
			return err
		}
	}
	result := h.Store.Dispatch(store.MarkPartAsPaid{
		InstallationID: c.Params("id"),
		IsManual:       body.IsManual,
	})
	return h.respond(c, result, nil)
}

// ListInstallations handles GET /api/installations
// @Summary List part installations
// @Tags Parts
// @Produce json
// @Success 200 {object} installationsResponse
// @Router /installations [get]
func (h *Handler) ListInstallations(c *fiber.Ctx) error {
	st := h.Store.State()
	return c.Status(fiber.StatusOK).JSON(installationsResponse{
		PartInstallations:       st.PartInstallations,
		ManualPartInstallations: st.ManualPartInstallations,
	})
}

type partBody struct {
	Name     string            `json:"name" validate:"required"`
	Quantity int               `json:"quantity" validate:"gte=0"`
	Price    types.FlexDecimal `json:"price"`
}

func (p partBody) toModel() models.Part {
	return models.Part{
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price.Decimal(),
	}
}

type increasePricesBody struct {
	Percentage types.FlexDecimal `json:"percentage" validate:"required"`
}

type installPartBody struct {
	PartID      string `json:"partId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	InstallDate string `json:"installDate"`
}

type installManualPartBody struct {
	PartName    string            `json:"partName" validate:"required"`
	Quantity    int               `json:"quantity" validate:"gt=0"`
	UnitPrice   types.FlexDecimal `json:"unitPrice"`
	TotalPrice  types.FlexDecimal `json:"totalPrice"`
	InstallDate string            `json:"installDate"`
}

type markPaidBody struct {
	IsManual bool `json:"isManual"`
}

type installationsResponse struct {
	PartInstallations       []models.PartInstallation       `json:"partInstallations"`
	ManualPartInstallations []models.ManualPartInstallation `json:"manualPartInstallations"`
}
