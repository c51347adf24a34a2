// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Comment service specific errors
var (
	ErrCommentNotFound    = errors.New("comment not found")
	ErrAttachmentNotFound = errors.New("attachment not found for comment")
	ErrNotCommentAuthor   = errors.New("requester is not the comment author")
	ErrAlreadyLiked       = errors.New("comment already liked by user")
	ErrInvalidCommentData = errors.New("invalid comment data")
	ErrCrossThreadReply   = errors.New("parent comment belongs to a different thread")
	ErrDeletionFailed     = errors.New("cascade deletion failed")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrParentNotFound     = errors.New("parent entity does not exist")

	// Request and validation errors
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidUUID        = errors.New("invalid UUID format")
	ErrMissingUserContext = errors.New("missing user context")
	ErrValidationFailed   = errors.New("validation failed")

	// Database and system errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// CommentError represents a comment service error with additional context
type CommentError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *CommentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CommentError) Unwrap() error {
	return e.Cause
}

// NewCommentError creates a new CommentError
func NewCommentError(code, message string, cause error) *CommentError {
	return &CommentError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes
const (
	CodeCommentNotFound    = "COMMENT_NOT_FOUND"
	CodeAttachmentNotFound = "ATTACHMENT_NOT_FOUND"
	CodePermissionDenied   = "PERMISSION_DENIED"
	CodeAlreadyLiked       = "ALREADY_LIKED"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDeletionFailed     = "DELETION_FAILED"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidUUID        = "INVALID_UUID"
	CodeDatabaseOperation  = "DATABASE_OPERATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrCommentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCommentNotFound,
			Message: "Comment not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAttachmentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeAttachmentNotFound,
			Message: "Attachment not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrParentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCommentNotFound,
			Message: "Parent entity not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "User not found (stale authentication token)",
			Details: err.Error(),
		})
	case errors.Is(err, ErrNotCommentAuthor):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Code:    CodePermissionDenied,
			Message: "Comment ownership required",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAlreadyLiked):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeAlreadyLiked,
			Message: "Comment already liked",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCommentData), errors.Is(err, ErrCrossThreadReply):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid comment data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDeletionFailed):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeDeletionFailed,
			Message: "Deletion failed, no changes were applied",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseOperation,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string, details ...string) error {
	response := ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(http.StatusBadRequest).JSON(response)
}

// HandleUserContextError returns an error for invalid user context
func HandleUserContextError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}

// HandleUUIDError handles UUID parsing errors with 400 Bad Request
func HandleUUIDError(c *fiber.Ctx, fieldName string) error {
	message := fmt.Sprintf("Invalid %s format", fieldName)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidUUID,
		Message: message,
		Details: message,
	})
}

// WrapDatabaseError wraps database errors
func WrapDatabaseError(err error) *CommentError {
	return NewCommentError(CodeDatabaseOperation, "Database operation failed", err)
}
