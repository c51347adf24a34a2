// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Predefined storage errors
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrNotFileOwner    = errors.New("file does not belong to user")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrFileNotPending  = errors.New("file is not awaiting upload")
	ErrFileNotReady    = errors.New("file is not available")
	ErrInvalidRequest  = errors.New("invalid request format")
)

// Error codes for API responses
const (
	CodeFileNotFound    = "file_not_found"
	CodeNotFileOwner    = "not_file_owner"
	CodeFileTooLarge    = "file_too_large"
	CodeInvalidMimeType = "invalid_mime_type"
	CodeFileNotPending  = "file_not_pending"
	CodeFileNotReady    = "file_not_ready"
	CodeInvalidRequest  = "invalid_request"
	CodeInvalidUUID     = "invalid_uuid"
	CodeMissingUser     = "missing_user_context"
	CodeInternalError   = "internal_error"
)

// HandleServiceError maps service errors to HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   CodeFileNotFound,
			"message": "File not found",
		})
	case errors.Is(err, ErrNotFileOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   CodeNotFileOwner,
			"message": "You can only manage your own files",
		})
	case errors.Is(err, ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error":   CodeFileTooLarge,
			"message": err.Error(),
		})
	case errors.Is(err, ErrInvalidMimeType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error":   CodeInvalidMimeType,
			"message": err.Error(),
		})
	case errors.Is(err, ErrFileNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   CodeFileNotPending,
			"message": "File is not awaiting upload",
		})
	case errors.Is(err, ErrFileNotReady):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   CodeFileNotReady,
			"message": "File is not available",
		})
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   CodeInvalidRequest,
			"message": "Invalid request format",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   CodeInternalError,
			"message": "An internal error occurred",
		})
	}
}

// HandleUUIDError handles invalid UUID path parameters
func HandleUUIDError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   CodeInvalidUUID,
		"message": "Invalid UUID format",
	})
}

// HandleUserContextError handles missing user context
func HandleUserContextError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   CodeMissingUser,
		"message": "Authentication required",
	})
}

// HandleInvalidRequestError handles malformed request bodies
func HandleInvalidRequestError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   CodeInvalidRequest,
		"message": "Invalid request format",
	})
}
