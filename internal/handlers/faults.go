package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/receipt"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// CreateFaultReport handles POST /api/fault-reports
// @Summary File a citizen fault report
// @Tags Faults
// @Accept json
// @Produce json
// @Param body body faultReportBody true "Report"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fault-reports [post]
func (h *Handler) CreateFaultReport(c *fiber.Ctx) error {
	var body faultReportBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddFaultReport{
		BuildingID:      body.BuildingID,
		ReporterName:    body.ReporterName,
		ReporterSurname: body.ReporterSurname,
		ReporterPhone:   body.ReporterPhone,
		ApartmentNo:     body.ApartmentNo,
		Description:     body.Description,
	})
	return h.respond(c, result, nil)
}

// ListFaultReports handles GET /api/fault-reports
// @Summary List fault reports
// @Tags Faults
// @Produce json
// @Success 200 {array} models.FaultReport
// @Router /fault-reports [get]
func (h *Handler) ListFaultReports(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().FaultReports)
}

// ResolveFaultReport handles POST /api/fault-reports/:id/resolve
// @Summary Mark a fault report resolved
// @Tags Faults
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fault-reports/{id}/resolve [post]
func (h *Handler) ResolveFaultReport(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.ResolveFaultReport{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// ReportFault handles POST /api/buildings/:id/fault
// @Summary Flag a building defective
// @Tags Faults
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Param body body reportFaultBody true "Fault"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/fault [post]
func (h *Handler) ReportFault(c *fiber.Ctx) error {
	var body reportFaultBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	severity := body.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	result := h.Store.Dispatch(store.ReportFault{
		BuildingID:  c.Params("id"),
		Description: body.Description,
		Severity:    severity,
		ReportedBy:  body.ReportedBy,
	})
	return h.respond(c, result, nil)
}

// FaultForm handles GET /api/buildings/:id/fault-form
// @Summary Render the printable fault report form for a building
// @Tags Faults
// @Produce html
// @Param id path string true "Building ID"
// @Success 200 {string} string "HTML form"
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /buildings/{id}/fault-form [get]
func (h *Handler) FaultForm(c *fiber.Ctx) error {
	st := h.Store.State()
	var building models.Building
	found := false
	for _, b := range st.Buildings {
		if b.ID == c.Params("id") {
			building = b
			found = true
			break
		}
	}
	if !found {
		return utils.NotFoundResponse(c, "Building not found")
	}

	html := receipt.RenderFaultForm(receipt.FaultFormInput{
		Building: building,
		Settings: st.Settings,
	})
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(html)
}

type faultReportBody struct {
	BuildingID      string `json:"buildingId" validate:"required"`
	ReporterName    string `json:"reporterName" validate:"required"`
	ReporterSurname string `json:"reporterSurname"`
	ReporterPhone   string `json:"reporterPhone"`
	ApartmentNo     string `json:"apartmentNo"`
	Description     string `json:"description" validate:"required"`
}

type reportFaultBody struct {
	Description string          `json:"description"`
	Severity    models.Severity `json:"severity" validate:"omitempty,oneof=low medium high"`
	ReportedBy  string          `json:"reportedBy"`
}
