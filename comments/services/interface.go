// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/comments/models"
	"github.com/worklane/worklane-api/internal/types"
)

// CommentService orchestrates the comment thread core: comment persistence,
// attachment linking, like toggling, cascade deletion, and notification
// dispatch on creation.
type CommentService interface {
	// CreateComment validates and persists a new comment, links any uploaded
	// files (partial success allowed, surfaced in the result), and fans out
	// notifications best-effort after the write succeeds.
	CreateComment(ctx context.Context, req *models.CreateCommentRequest, user *types.UserContext) (*models.CreateCommentResult, error)

	// GetThread returns the full hierarchical discussion tree for one parent
	// entity, recomputed from flat storage rows on every call.
	GetThread(ctx context.Context, parentType string, parentID uuid.UUID) (*models.ThreadResponse, error)

	// GetComment returns a single comment by ID
	GetComment(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)

	// UpdateComment edits a comment's content. Author-only.
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *models.UpdateCommentRequest, user *types.UserContext) (*models.Comment, error)

	// DeleteComment removes a comment and its entire reply subtree together
	// with their attachment links and likes, atomically. Only the top-level
	// target's author is checked.
	DeleteComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) (*models.DeleteCommentResponse, error)

	// LikeComment records a like; a second like by the same user conflicts
	LikeComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) error

	// UnlikeComment removes a like; removing a non-existent like is a no-op
	UnlikeComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) error

	// AttachFile links an uploaded file to an existing comment. Author-only.
	AttachFile(ctx context.Context, commentID, fileID uuid.UUID, user *types.UserContext) error

	// DetachFile removes a file link from a comment. Author-only.
	DetachFile(ctx context.Context, commentID, fileID uuid.UUID, user *types.UserContext) error

	// QueryComments executes a filtered, paginated flat listing
	QueryComments(ctx context.Context, filter *models.CommentQueryFilter) (*models.CommentsListResponse, error)
}
