package handlers

import (
	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/internal/types"
	storageErrors "github.com/worklane/worklane-api/storage/errors"
	"github.com/worklane/worklane-api/storage/models"
	"github.com/worklane/worklane-api/storage/services"
)

// StorageHandler handles HTTP requests for file uploads
type StorageHandler struct {
	service services.StorageService
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(service services.StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

// InitializeUpload handles POST /storage/uploads
func (h *StorageHandler) InitializeUpload(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return storageErrors.HandleUserContextError(c)
	}

	var req models.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return storageErrors.HandleInvalidRequestError(c)
	}

	response, err := h.service.InitializeUpload(c.Context(), &req, user.UserID)
	if err != nil {
		return storageErrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// ConfirmUpload handles POST /storage/uploads/:fileId/confirm
func (h *StorageHandler) ConfirmUpload(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return storageErrors.HandleUUIDError(c)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return storageErrors.HandleUserContextError(c)
	}

	file, err := h.service.ConfirmUpload(c.Context(), fileID, user.UserID)
	if err != nil {
		return storageErrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(file)
}

// GetFileURL handles GET /storage/files/:fileId/url
func (h *StorageHandler) GetFileURL(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return storageErrors.HandleUUIDError(c)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return storageErrors.HandleUserContextError(c)
	}

	response, err := h.service.GetFileURL(c.Context(), fileID, user.UserID)
	if err != nil {
		return storageErrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// DeleteFile handles DELETE /storage/files/:fileId
func (h *StorageHandler) DeleteFile(c *fiber.Ctx) error {
	fileID, err := uuid.FromString(c.Params("fileId"))
	if err != nil {
		return storageErrors.HandleUUIDError(c)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return storageErrors.HandleUserContextError(c)
	}

	if err := h.service.DeleteFile(c.Context(), fileID, user.UserID); err != nil {
		return storageErrors.HandleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
