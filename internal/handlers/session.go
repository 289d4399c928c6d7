package handlers

import (
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /api/users
// @Summary List operator accounts
// @Tags Session
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Users)
}

// SetUser handles POST /api/session/user
// @Summary Select the acting operator by name
// @Description Unknown names create an account on the fly.
// @Tags Session
// @Accept json
// @Produce json
// @Param body body setUserBody true "Operator name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /session/user [post]
func (h *Handler) SetUser(c *fiber.Ctx) error {
	var body setUserBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.SetUser{Name: body.Name})
	return h.respond(c, result, nil)
}

// CurrentUser handles GET /api/session/user
// @Summary Get the acting operator
// @Tags Session
// @Produce json
// @Success 200 {object} models.User
// @Success 204 "No operator selected"
// @Router /session/user [get]
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	user := h.Store.State().CurrentUser
	if user == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete an operator account
// @Tags Session
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.DeleteUser{ID: c.Params("id")})
	return h.respond(c, result, nil)
}

// ListUpdates handles GET /api/updates
// @Summary List the audit log
// @Tags Session
// @Produce json
// @Success 200 {array} models.Update
// @Router /updates [get]
func (h *Handler) ListUpdates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.State().Updates)
}

// CreateUpdate handles POST /api/updates
// @Summary Append a caller-authored audit entry
// @Tags Session
// @Accept json
// @Produce json
// @Param body body updateBody true "Entry"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /updates [post]
func (h *Handler) CreateUpdate(c *fiber.Ctx) error {
	var body updateBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddUpdate{
		Action:    body.Action,
		User:      body.User,
		Timestamp: body.Timestamp,
		Details:   body.Details,
	})
	return h.respond(c, result, nil)
}

// Notifications handles GET /api/notifications
// @Summary Get session notifications
// @Tags Session
// @Produce json
// @Success 200 {object} notificationsResponse
// @Router /notifications [get]
func (h *Handler) Notifications(c *fiber.Ctx) error {
	st := h.Store.State()
	return c.Status(fiber.StatusOK).JSON(notificationsResponse{
		Notifications: st.Notifications,
		Unread:        st.UnreadNotifications,
	})
}

// CreateNotification handles POST /api/notifications
// @Summary Push a session notification
// @Tags Session
// @Accept json
// @Produce json
// @Param body body notificationBody true "Message"
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /notifications [post]
func (h *Handler) CreateNotification(c *fiber.Ctx) error {
	var body notificationBody
	if err := h.parseBody(c, &body); err != nil {
		return err
	}
	result := h.Store.Dispatch(store.AddNotification{Message: body.Message})
	return h.respond(c, result, nil)
}

// ClearNotifications handles POST /api/notifications/clear
// @Summary Mark all notifications read
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /notifications/clear [post]
func (h *Handler) ClearNotifications(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.ClearNotifications{})
	return h.respond(c, result, nil)
}

// ToggleSidebar handles POST /api/session/sidebar
// @Summary Toggle the sidebar flag
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /session/sidebar [post]
func (h *Handler) ToggleSidebar(c *fiber.Ctx) error {
	result := h.Store.Dispatch(store.ToggleSidebar{})
	return h.respond(c, result, nil)
}

type setUserBody struct {
	Name string `json:"name" validate:"required"`
}

type updateBody struct {
	Action    string `json:"action" validate:"required"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

type notificationBody struct {
	Message string `json:"message" validate:"required"`
}

type notificationsResponse struct {
	Notifications []string `json:"notifications"`
	Unread        int      `json:"unreadNotifications"`
}
