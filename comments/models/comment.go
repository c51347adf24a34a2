// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Parent entity kinds a comment thread can belong to
const (
	ParentTypeProject = "project"
	ParentTypeTask    = "task"
)

// IsValidParentType checks if the parent type is a known thread scope
func IsValidParentType(parentType string) bool {
	return parentType == ParentTypeProject || parentType == ParentTypeTask
}

// Comment represents the complete comment entity in the database
type Comment struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	AuthorID   uuid.UUID  `json:"authorId" db:"author_id"`
	ParentType string     `json:"parentType" db:"parent_type"`
	ParentID   uuid.UUID  `json:"parentId" db:"parent_id"`
	Content    string     `json:"content" db:"content"`
	ReplyTo    *uuid.UUID `json:"replyTo,omitempty" db:"reply_to"`
	IsEdited   bool       `json:"isEdited" db:"is_edited"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

// AttachmentRef is a file reference linked to a comment. The underlying file
// row is owned by the storage module; deleting a comment only removes the link.
type AttachmentRef struct {
	FileID    uuid.UUID `json:"fileId" db:"file_id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	MimeType  string    `json:"mimeType" db:"mime_type"`
	SizeBytes int64     `json:"sizeBytes" db:"size_bytes"`
}

// AuthorInfo is the denormalized author block returned with thread reads
type AuthorInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Photo string    `json:"photo"`
}

// ThreadComment is one flat storage row of a thread read: the comment plus the
// author display fields joined from profiles and its attachment aggregate.
type ThreadComment struct {
	Comment
	AuthorName  string          `db:"author_name"`
	AuthorPhoto string          `db:"author_photo"`
	Attachments []AttachmentRef `db:"-"`
	LikeCount   int64           `db:"-"`
}

// CommentNode is the hierarchical read contract: a comment with its replies
// nested recursively, each level ordered oldest first.
type CommentNode struct {
	ID          uuid.UUID       `json:"id"`
	Content     string          `json:"content"`
	ReplyTo     *uuid.UUID      `json:"replyTo,omitempty"`
	IsEdited    bool            `json:"isEdited"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Author      AuthorInfo      `json:"author"`
	Attachments []AttachmentRef `json:"attachments"`
	LikeCount   int64           `json:"likeCount"`
	Replies     []*CommentNode  `json:"replies"`
}

// CreateCommentRequest represents the request payload for creating a comment
type CreateCommentRequest struct {
	ParentType string      `json:"parentType" validate:"required"`
	ParentID   uuid.UUID   `json:"parentId" validate:"required"`
	Content    string      `json:"content"`
	ReplyTo    *uuid.UUID  `json:"replyTo,omitempty"`
	FileIDs    []uuid.UUID `json:"fileIds,omitempty"`
}

// UpdateCommentRequest represents the request payload for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// AttachmentFailure reports one file that could not be linked during creation
type AttachmentFailure struct {
	FileID uuid.UUID `json:"fileId"`
	Reason string    `json:"reason"`
}

// CreateCommentResult is returned from comment creation: the persisted comment
// plus the outcome of the per-file attachment loop (partial success allowed).
type CreateCommentResult struct {
	Comment       *Comment            `json:"comment"`
	AttachedFiles int                 `json:"attachedFiles"`
	FailedFiles   []AttachmentFailure `json:"failedFiles,omitempty"`
}

// CommentQueryFilter represents query filters for flat comment listings
type CommentQueryFilter struct {
	ParentType *string    `json:"parentType,omitempty" schema:"parentType"`
	ParentID   *uuid.UUID `json:"parentId,omitempty" schema:"parentId"`
	AuthorID   *uuid.UUID `json:"authorId,omitempty" schema:"authorId"`
	RootOnly   bool       `json:"rootOnly,omitempty" schema:"rootOnly"`
	Limit      int        `json:"limit" schema:"limit"`
	Page       int        `json:"page,omitempty" schema:"page"`
}

// ThreadResponse is the response for a full thread read
type ThreadResponse struct {
	Comments []*CommentNode `json:"comments"`
	Count    int            `json:"count"`
}

// CommentsListResponse represents the response for flat comment listings
type CommentsListResponse struct {
	Comments []*Comment `json:"comments"`
	Count    int        `json:"count"`
	Page     int        `json:"page,omitempty"`
	Limit    int        `json:"limit,omitempty"`
}

// DeleteCommentResponse confirms a cascade deletion
type DeleteCommentResponse struct {
	DeletedComments int64 `json:"deletedComments"`
	DeletedLinks    int64 `json:"deletedLinks"`
}
