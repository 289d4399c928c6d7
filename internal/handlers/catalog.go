// catalog.go
//
// Routes for the supporting catalogs: printers, message templates, proposals
// and their templates, QR codes and draft auto-saves.

package handlers

import (
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"
	"github.com/TKNasansor/TKNLIFT/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ListPrinters handles GET /api/printers
// @Summary List printers
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Printer
// @Router /printers [get]
func (h *Handler) ListPrinters(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Printers)
}

// CreatePrinter handles POST /api/printers
// @Summary Register a printer
// @Tags Catalog
// @Accept json
// @Produce json
// @Param printer body models.Printer true "Printer"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /printers [post]
func (h *Handler) CreatePrinter(c *fiber.Ctx) error {
	var printer models.Printer
	if err := h.parseBody(c, &printer); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddPrinter{Printer: printer})
	return h.respond(c, result, nil)
}

// UpdatePrinter handles PUT /api/printers/:id
// @Summary Update a printer
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Printer ID"
// @Param printer body models.Printer true "Printer"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /printers/{id} [put]
func (h *Handler) UpdatePrinter(c *fiber.Ctx) error {
	var printer models.Printer
	if err := h.parseBody(c, &printer); err != nil {
		return err
	}
	printer.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdatePrinter{Printer: printer})
	return h.respond(c, result, nil)
}

// DeletePrinter handles DELETE /api/printers/:id
// @Summary Delete a printer
// @Tags Catalog
// @Produce json
// @Param id path string true "Printer ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /printers/{id} [delete]
func (h *Handler) DeletePrinter(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeletePrinter{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// PingPrinter handles POST /api/printers/:id/ping
// @Summary Check a printer is reachable
// @Tags Catalog
// @Produce json
// @Param id path string true "Printer ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /printers/{id}/ping [post]
func (h *Handler) PingPrinter(c *fiber.Ctx) error {
	for _, p := range h.Store.State().Printers {
		if p.ID != c.Params("id") {
			continue
		}
		if err := utils.PingPrinter(p.IPAddress, p.Port, 1500*time.Millisecond); err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, "printerPing")
		}
		return utils.MutationSuccessResponse(c, nil)
	}
	return utils.NotFoundResponse(c, "Printer not found")
}

// ListSMSTemplates handles GET /api/sms-templates
// @Summary List SMS templates
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.SMSTemplate
// @Router /sms-templates [get]
func (h *Handler) ListSMSTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().SMSTemplates)
}

// CreateSMSTemplate handles POST /api/sms-templates
// @Summary Add an SMS template
// @Tags Catalog
// @Accept json
// @Produce json
// @Param template body models.SMSTemplate true "Template"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /sms-templates [post]
func (h *Handler) CreateSMSTemplate(c *fiber.Ctx) error {
	var template models.SMSTemplate
	if err := h.parseBody(c, &template); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddSMSTemplate{Template: template})
	return h.respond(c, result, nil)
}

// UpdateSMSTemplate handles PUT /api/sms-templates/:id
// @Summary Update an SMS template
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body models.SMSTemplate true "Template"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /sms-templates/{id} [put]
func (h *Handler) UpdateSMSTemplate(c *fiber.Ctx) error {
	var template models.SMSTemplate
	if err := h.parseBody(c, &template); err != nil {
		return err
	}
	template.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdateSMSTemplate{Template: template})
	return h.respond(c, result, nil)
}

// DeleteSMSTemplate handles DELETE /api/sms-templates/:id
// @Summary Delete an SMS template
// @Tags Catalog
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /sms-templates/{id} [delete]
func (h *Handler) DeleteSMSTemplate(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeleteSMSTemplate{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// SendBulkSMS handles POST /api/sms-templates/:id/send
// @Summary Send a template to buildings as SMS
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param body body bulkSendBody true "Target buildings"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sms-templates/{id}/send [post]
func (h *Handler) SendBulkSMS(c *fiber.Ctx) error {
	var body bulkSendBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.SendBulkSMS{
		TemplateID:  c.Params("id"),
		BuildingIDs: body.BuildingIDs.Slice(),
	})
	return h.respond(c, result, nil)
}

// SendWhatsApp handles POST /api/sms-templates/:id/whatsapp
// @Summary Build WhatsApp deep links for buildings
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param body body bulkSendBody true "Target buildings"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sms-templates/{id}/whatsapp [post]
func (h *Handler) SendWhatsApp(c *fiber.Ctx) error {
	var body bulkSendBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.SendWhatsApp{
		TemplateID:  c.Params("id"),
		BuildingIDs: body.BuildingIDs.Slice(),
	})
	var extra fiber.Map
	if result.Applied {
		extra = fiber.Map{"links": result.Links}
	}
	return h.respond(c, result, extra)
}

// ListProposals handles GET /api/proposals
// @Summary List proposals
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Proposal
// @Router /proposals [get]
func (h *Handler) ListProposals(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Proposals)
}

// CreateProposal handles POST /api/proposals
// @Summary Add a proposal
// @Tags Catalog
// @Accept json
// @Produce json
// @Param proposal body models.Proposal true "Proposal"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposals [post]
func (h *Handler) CreateProposal(c *fiber.Ctx) error {
	var proposal models.Proposal
	if err := h.parseBody(c, &proposal); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddProposal{Proposal: proposal})
	return h.respond(c, result, nil)
}

// UpdateProposal handles PUT /api/proposals/:id
// @Summary Update a proposal
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param proposal body models.Proposal true "Proposal"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposals/{id} [put]
func (h *Handler) UpdateProposal(c *fiber.Ctx) error {
	var proposal models.Proposal
	if err := h.parseBody(c, &proposal); err != nil {
		return err
	}
	proposal.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdateProposal{Proposal: proposal})
	return h.respond(c, result, nil)
}

// DeleteProposal handles DELETE /api/proposals/:id
// @Summary Delete a proposal
// @Tags Catalog
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposals/{id} [delete]
func (h *Handler) DeleteProposal(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeleteProposal{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// ListProposalTemplates handles GET /api/proposal-templates
// @Summary List proposal templates
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.ProposalTemplate
// @Router /proposal-templates [get]
func (h *Handler) ListProposalTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().ProposalTemplates)
}

// CreateProposalTemplate handles POST /api/proposal-templates
// @Summary Add a proposal template
// @Tags Catalog
// @Accept json
// @Produce json
// @Param template body models.ProposalTemplate true "Template"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposal-templates [post]
func (h *Handler) CreateProposalTemplate(c *fiber.Ctx) error {
	var template models.ProposalTemplate
	if err := h.parseBody(c, &template); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddProposalTemplate{Template: template})
	return h.respond(c, result, nil)
}

// UpdateProposalTemplate handles PUT /api/proposal-templates/:id
// @Summary Update a proposal template
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body models.ProposalTemplate true "Template"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposal-templates/{id} [put]
func (h *Handler) UpdateProposalTemplate(c *fiber.Ctx) error {
	var template models.ProposalTemplate
	if err := h.parseBody(c, &template); err != nil {
		return err
	}
	template.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdateProposalTemplate{Template: template})
	return h.respond(c, result, nil)
}

// DeleteProposalTemplate handles DELETE /api/proposal-templates/:id
// @Summary Delete a proposal template
// @Tags Catalog
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /proposal-templates/{id} [delete]
func (h *Handler) DeleteProposalTemplate(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeleteProposalTemplate{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// ListQRCodes handles GET /api/qr-codes
// @Summary List QR code data
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.QRCodeData
// @Router /qr-codes [get]
func (h *Handler) ListQRCodes(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().QRCodes)
}

// CreateQRCode handles POST /api/qr-codes
// @Summary Add QR code data
// @Tags Catalog
// @Accept json
// @Produce json
// @Param data body models.QRCodeData true "QR code data"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /qr-codes [post]
func (h *Handler) CreateQRCode(c *fiber.Ctx) error {
	var data models.QRCodeData
	if err := h.parseBody(c, &data); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddQRCode{Data: data})
	return h.respond(c, result, nil)
}

// ListAutoSaves handles GET /api/auto-saves
// @Summary List draft auto-save snapshots
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.AutoSaveData
// @Router /auto-saves [get]
func (h *Handler) ListAutoSaves(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().AutoSaveData)
}

// UpsertAutoSave handles PUT /api/auto-saves/:id
// @Summary Upsert a draft auto-save snapshot
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param data body models.AutoSaveData true "Draft"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /auto-saves/{id} [put]
func (h *Handler) UpsertAutoSave(c *fiber.Ctx) error {
	var data models.AutoSaveData
	if err := h.parseBody(c, &data); err != nil {
		return err
	}
	data.ID = c.Params("id")
	result := h.Store.Dispatch(store.UpdateAutoSave{Data: data})
	return h.respond(c, result, nil)
}

type bulkSendBody struct {
	BuildingIDs types.FlexList[string] `json:"buildingIds" validate:"required"`
}
