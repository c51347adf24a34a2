package storage

import (
	"github.com/gofiber/fiber/v2"

	"github.com/worklane/worklane-api/internal/middleware/authjwt"
	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
	"github.com/worklane/worklane-api/storage/handlers"
)

// StorageHandlers holds all the handlers this router needs.
type StorageHandlers struct {
	StorageHandler *handlers.StorageHandler
}

// RegisterRoutes is the single entry point for setting up storage routes.
// Every route requires an authenticated user.
func RegisterRoutes(app *fiber.App, h *StorageHandlers, cfg *platformconfig.Config) {
	auth := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/storage")

	group.Post("/uploads", auth, h.StorageHandler.InitializeUpload)
	group.Post("/uploads/:fileId/confirm", auth, h.StorageHandler.ConfirmUpload)
	group.Get("/files/:fileId/url", auth, h.StorageHandler.GetFileURL)
	group.Delete("/files/:fileId", auth, h.StorageHandler.DeleteFile)
}
