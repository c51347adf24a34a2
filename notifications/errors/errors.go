// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Predefined notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("user is not the notification recipient")
	ErrInvalidRequest       = errors.New("invalid request format")
	ErrInvalidUUID          = errors.New("invalid UUID format")
	ErrMissingUserContext   = errors.New("user context not found")
	ErrDatabaseOperation    = errors.New("database operation failed")
)

// Error codes for API responses
const (
	CodeNotificationNotFound = "notification_not_found"
	CodeNotRecipient         = "not_recipient"
	CodeInvalidRequest       = "invalid_request"
	CodeInvalidUUID          = "invalid_uuid"
	CodeMissingUserContext   = "missing_user_context"
	CodeInternalError        = "internal_error"
)

// HandleServiceError maps service errors to HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotificationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   CodeNotificationNotFound,
			"message": "Notification not found",
		})
	case errors.Is(err, ErrNotRecipient):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   CodeNotRecipient,
			"message": "You can only manage your own notifications",
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
		"error":   CodeMissingUserContext,
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
