package handlers

import (
	"net/http"
	"net/url"
	"reflect"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/gorilla/schema"

	"github.com/worklane/worklane-api/comments/errors"
	"github.com/worklane/worklane-api/comments/models"
	"github.com/worklane/worklane-api/comments/services"
	"github.com/worklane/worklane-api/comments/validation"
	"github.com/worklane/worklane-api/internal/types"
)

// queryDecoder decodes flat comment listing filters from query strings
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(uuid.UUID{}, func(value string) reflect.Value {
		id, err := uuid.FromString(value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(id)
	})
	return d
}

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment handles comment creation
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCommentRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.commentService.CreateComment(c.Context(), &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// GetThread handles retrieving the full discussion tree for a parent entity
func (h *CommentHandler) GetThread(c *fiber.Ctx) error {
	parentType := c.Params("parentType")
	if !models.IsValidParentType(parentType) {
		return errors.HandleInvalidRequestError(c, "parentType must be 'project' or 'task'")
	}

	parentID, err := uuid.FromString(c.Params("parentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "parentId")
	}

	threadResponse, err := h.commentService.GetThread(c.Context(), parentType, parentID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(threadResponse)
}

// GetComment handles retrieving a single comment
func (h *CommentHandler) GetComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	comment, err := h.commentService.GetComment(c.Context(), commentID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(comment)
}

// QueryComments handles filtered flat comment listings
func (h *CommentHandler) QueryComments(c *fiber.Ctx) error {
	values := url.Values{}
	for key, value := range c.Queries() {
		values.Set(key, value)
	}

	var filter models.CommentQueryFilter
	if err := queryDecoder.Decode(&filter, values); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid query parameters")
	}

	if err := validation.ValidateCommentQueryFilter(&filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	result, err := h.commentService.QueryComments(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// UpdateComment handles comment editing
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	var req models.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateCommentRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	comment, err := h.commentService.UpdateComment(c.Context(), commentID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(comment)
}

// DeleteComment handles cascade deletion of a comment subtree
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.commentService.DeleteComment(c.Context(), commentID, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// LikeComment handles adding a like to a comment
func (h *CommentHandler) LikeComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	if err := h.commentService.LikeComment(c.Context(), commentID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// UnlikeComment handles removing a like from a comment
func (h *CommentHandler) UnlikeComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	if err := h.commentService.UnlikeComment(c.Context(), commentID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// AttachFile handles linking an uploaded file to an existing comment
func (h *CommentHandler) AttachFile(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return errors.HandleUUIDError(c, "fileId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	if err := h.commentService.AttachFile(c.Context(), commentID, fileID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// DetachFile handles removing a file link from a comment
func (h *CommentHandler) DetachFile(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return errors.HandleUUIDError(c, "fileId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	if err := h.commentService.DetachFile(c.Context(), commentID, fileID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
