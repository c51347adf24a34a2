package notifications

import (
	"github.com/gofiber/fiber/v2"

	"github.com/worklane/worklane-api/internal/middleware/authjwt"
	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
	"github.com/worklane/worklane-api/notifications/handlers"
)

// NotificationsHandlers holds all the handlers this router needs.
type NotificationsHandlers struct {
	NotificationHandler *handlers.NotificationHandler
}

// RegisterRoutes is the single entry point for setting up notification routes.
// Every route requires an authenticated user.
func RegisterRoutes(app *fiber.App, h *NotificationsHandlers, cfg *platformconfig.Config) {
	auth := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/notifications")

	group.Get("/", auth, h.NotificationHandler.ListNotifications)
	group.Put("/read-all", auth, h.NotificationHandler.MarkAllRead)
	group.Put("/:notificationId/read", auth, h.NotificationHandler.MarkRead)
}
