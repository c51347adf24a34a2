// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/comments/models"
)

// CommentFilter represents filtering criteria for querying comments
type CommentFilter struct {
	ParentType *string
	ParentID   *uuid.UUID
	AuthorID   *uuid.UUID
	ReplyTo    *uuid.UUID
	RootOnly   bool // If true, only return root comments (reply_to IS NULL)
}

// CommentRepository defines the interface for comment-specific database
// operations, including the like rows and attachment link rows that share the
// comment's lifecycle.
type CommentRepository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// FindByID retrieves a comment by its ID
	FindByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)

	// FindThread retrieves every comment of one (parentType, parentID) thread
	// as flat rows ordered ascending by (created_at, id), with author display
	// fields joined from profiles. Attachments and like counts are loaded
	// separately via the bulk methods below.
	FindThread(ctx context.Context, parentType string, parentID uuid.UUID) ([]*models.ThreadComment, error)

	// Find retrieves comments matching the filter criteria with pagination
	Find(ctx context.Context, filter CommentFilter, limit, offset int) ([]*models.Comment, error)

	// Count returns the number of comments matching the filter criteria
	Count(ctx context.Context, filter CommentFilter) (int64, error)

	// Update persists new content for an existing comment, marking it edited
	Update(ctx context.Context, comment *models.Comment) error

	// FindReplyIDs returns the ids of all direct replies to any of the given
	// comments. Used by the cascade engine to expand the deletion frontier one
	// level at a time without recursion.
	FindReplyIDs(ctx context.Context, parentIDs []uuid.UUID) ([]uuid.UUID, error)

	// DeleteByIDs removes comment rows by id and reports how many went away
	DeleteByIDs(ctx context.Context, commentIDs []uuid.UUID) (int64, error)

	// DeleteAttachmentLinks removes the attachment link rows for the given
	// comments. File rows themselves are never touched here.
	DeleteAttachmentLinks(ctx context.Context, commentIDs []uuid.UUID) (int64, error)

	// DeleteLikes removes the like rows for the given comments
	DeleteLikes(ctx context.Context, commentIDs []uuid.UUID) (int64, error)

	// AddAttachment inserts a (comment, file) link row
	// Returns true if a new row was inserted, false if the link already existed
	AddAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error)

	// RemoveAttachment deletes one (comment, file) link row
	// Returns true if a row was deleted, false if no link existed
	RemoveAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error)

	// FindAttachmentsForComments bulk loads attachment references for multiple
	// comments in a single query, keyed by comment id. This avoids N+1 queries
	// when assembling a thread read.
	FindAttachmentsForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID][]models.AttachmentRef, error)

	// AddLike attempts to add a like for a comment
	// Returns true if a new row was inserted, false if it already existed
	AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	// RemoveLike removes a like for a comment
	// Returns true if a row was deleted, false if no like existed
	RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	// CountLikesForComments bulk counts likes for multiple comments in a
	// single query, keyed by comment id
	CountLikesForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// WithTransaction executes a function within a transaction. Every
	// repository call made through the derived context joins the transaction.
	// Needed for the cascade deletion engine, which must be all-or-nothing.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
