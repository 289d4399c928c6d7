package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"
	"github.com/gofiber/fiber/v2"
)

// CreatePayment handles POST /api/buildings/:id/payments
// @Summary Book a payment against a building
// @Description The debt drops clamped at zero; a matching income and ledger
// @Description entry are recorded.
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body paymentBody true "Payment"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/payments [post]
func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	var body paymentBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddPayment{
		BuildingID: c.Params("id"),
		Amount:     body.Amount.Decimal(),
		Date:       body.Date,
		ReceivedBy: body.ReceivedBy,
		Notes:      body.Notes,
	})
	return h.respond(c, result, nil)
}

// ListPayments handles GET /api/payments
// @Summary List payments
// @Tags Payments
// @Produce json
// @Success 200 {array} models.Payment
// @Router /payments [get]
func (h *Handler) ListPayments(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Payments)
}

// CreateIncome handles POST /api/incomes
// @Summary Book income outside the payment flow
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body incomeBody true "Income"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /incomes [post]
func (h *Handler) CreateIncome(c *fiber.Ctx) error {
	var body incomeBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddIncome{Income: models.Income{
		BuildingID: body.BuildingID,
		Amount:     body.Amount.Decimal(),
		Date:       body.Date,
		ReceivedBy: body.ReceivedBy,
	}})
	return h.respond(c, result, nil)
}

// ListIncomes handles GET /api/incomes
// @Summary List incomes
// @Tags Payments
// @Produce json
// @Success 200 {array} models.Income
// @Router /incomes [get]
func (h *Handler) ListIncomes(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Incomes)
}

// ListDebtRecords handles GET /api/debt-records
// @Summary List the debt ledger
// @Tags Payments
// @Produce json
// @Param buildingId query string false "Filter by building"
// @Success 200 {array} models.DebtRecord
// @Router /debt-records [get]
func (h *Handler) ListDebtRecords(c *fiber.Ctx) error {
	records := h.Store.State().DebtRecords
	if buildingID := c.Query("buildingId"); buildingID != "" {
		filtered := make([]models.DebtRecord, 0, len(records))
		for _, r := range records {
			if r.BuildingID == buildingID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

type paymentBody struct {
	Amount     types.FlexDecimal `json:"amount" validate:"required"`
	Date       string            `json:"date" validate:"required"`
	ReceivedBy string            `json:"receivedBy"`
	Notes      string            `json:"notes"`
}

type incomeBody struct {
	BuildingID string            `json:"buildingId"`
	Amount     types.FlexDecimal `json:"amount" validate:"required"`
	Date       string            `json:"date" validate:"required"`
	ReceivedBy string            `json:"receivedBy"`
}
