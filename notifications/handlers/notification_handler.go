package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/gorilla/schema"

	"github.com/worklane/worklane-api/internal/types"
	notificationErrors "github.com/worklane/worklane-api/notifications/errors"
	"github.com/worklane/worklane-api/notifications/models"
	"github.com/worklane/worklane-api/notifications/services"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	service services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return notificationErrors.HandleUserContextError(c)
	}

	values := url.Values{}
	for key, value := range c.Queries() {
		values.Set(key, value)
	}

	var filter models.NotificationQueryFilter
	if err := queryDecoder.Decode(&filter, values); err != nil {
		return notificationErrors.HandleInvalidRequestError(c)
	}

	response, err := h.service.ListNotifications(c.Context(), user.UserID, &filter)
	if err != nil {
		return notificationErrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// MarkRead handles PUT /notifications/:notificationId/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	notificationID, err := uuid.FromString(c.Params("notificationId"))
	if err != nil {
		return notificationErrors.HandleUUIDError(c)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return notificationErrors.HandleUserContextError(c)
	}

	if err := h.service.MarkRead(c.Context(), notificationID, user.UserID); err != nil {
		return notificationErrors.HandleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return notificationErrors.HandleUserContextError(c)
	}

	response, err := h.service.MarkAllRead(c.Context(), user.UserID)
	if err != nil {
		return notificationErrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
