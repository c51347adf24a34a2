package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/worklane/worklane-api/comments/handlers"
	"github.com/worklane/worklane-api/internal/middleware/authjwt"
	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
)

// CommentsHandlers holds all the handlers this router needs.
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comments routes.
// Every route requires an authenticated user.
func RegisterRoutes(app *fiber.App, h *CommentsHandlers, cfg *platformconfig.Config) {
	auth := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/comments")

	group.Post("/", auth, h.CommentHandler.CreateComment)
	group.Get("/", auth, h.CommentHandler.QueryComments)
	group.Get("/thread/:parentType/:parentId", auth, h.CommentHandler.GetThread)
	group.Get("/:commentId", auth, h.CommentHandler.GetComment)
	group.Put("/:commentId", auth, h.CommentHandler.UpdateComment)
	group.Delete("/:commentId", auth, h.CommentHandler.DeleteComment)
	group.Post("/:commentId/like", auth, h.CommentHandler.LikeComment)
	group.Delete("/:commentId/like", auth, h.CommentHandler.UnlikeComment)
	group.Post("/:commentId/files/:fileId", auth, h.CommentHandler.AttachFile)
	group.Delete("/:commentId/files/:fileId", auth, h.CommentHandler.DetachFile)
}
