// common.go
//
// Shared plumbing for the HTTP handlers: the handler dependency bundle,
// request body decoding with validation, and the mapping from command
// outcomes to HTTP responses.

package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler bundles the dependencies every route group shares.
type Handler struct {
	Store    *store.Store
	Validate *validator.Validate
	Log      *logrus.Logger
}

// NewHandler builds the handler bundle.
func NewHandler(s *store.Store, log *logrus.Logger) *Handler {
	return &Handler{
		Store:    s,
		Validate: validator.New(),
		Log:      log,
	}
}

// parseBody decodes and validates a JSON request body.
func (h *Handler) parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "parse")
	}
	if err := h.Validate.Struct(out); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "validation")
	}
	return nil
}

// respond maps a command outcome to an HTTP response. Extra payload fields
// are only attached when the command applied.
func (h *Handler) respond(c *fiber.Ctx, result store.Result, extra fiber.Map) error {
	if result.Applied {
		return utils.MutationSuccessResponse(c, extra)
	}
	return h.rejectResponse(c, result.Reason)
}

func (h *Handler) rejectResponse(c *fiber.Ctx, reason store.Reason) error {
	switch reason {
	case store.ReasonBuildingNotFound:
		return utils.NotFoundResponse(c, "Building not found")
	case store.ReasonPartNotFound:
		return utils.NotFoundResponse(c, "Part not found")
	case store.ReasonInstallationNotFound:
		return utils.NotFoundResponse(c, "Part installation not found")
	case store.ReasonFaultReportNotFound:
		return utils.NotFoundResponse(c, "Fault report not found")
	case store.ReasonTemplateNotFound:
		return utils.NotFoundResponse(c, "Template not found")
	case store.ReasonInsufficientStock:
		return utils.ErrorResponse(c, "Insufficient stock", fiber.StatusConflict, "stock")
	default:
		return utils.ErrorResponse(c, "Command rejected", fiber.StatusBadRequest, "command")
	}
}
