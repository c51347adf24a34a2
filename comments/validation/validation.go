package validation

import (
	"fmt"
	"strings"

	"github.com/worklane/worklane-api/comments/models"
)

const maxContentLength = 2000

// ValidateCreateCommentRequest validates the create comment request.
// A comment with empty content is valid as long as it carries at least one
// attachment; a comment with neither is rejected.
func ValidateCreateCommentRequest(req *models.CreateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if !models.IsValidParentType(req.ParentType) {
		return fmt.Errorf("parentType must be one of: %s, %s", models.ParentTypeProject, models.ParentTypeTask)
	}

	if req.ParentID == [16]byte{} {
		return fmt.Errorf("parentId is required")
	}

	if len(strings.TrimSpace(req.Content)) == 0 && len(req.FileIDs) == 0 {
		return fmt.Errorf("content is required when no attachments are provided")
	}

	if len(req.Content) > maxContentLength {
		return fmt.Errorf("content must be less than %d characters", maxContentLength)
	}

	if req.ReplyTo != nil && *req.ReplyTo == [16]byte{} {
		return fmt.Errorf("replyTo, if provided, must be a valid UUID")
	}

	for _, fileID := range req.FileIDs {
		if fileID == [16]byte{} {
			return fmt.Errorf("fileIds must all be valid UUIDs")
		}
	}

	return nil
}

// ValidateUpdateCommentRequest validates update comment request
func ValidateUpdateCommentRequest(req *models.UpdateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if len(strings.TrimSpace(req.Content)) == 0 {
		return fmt.Errorf("content cannot be empty or whitespace only")
	}

	if len(req.Content) > maxContentLength {
		return fmt.Errorf("content must be less than %d characters", maxContentLength)
	}

	return nil
}

// ValidateCommentQueryFilter validates query filter parameters
func ValidateCommentQueryFilter(filter *models.CommentQueryFilter) error {
	if filter == nil {
		return fmt.Errorf("filter is required")
	}

	if filter.Limit < 0 || filter.Limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100")
	}

	if filter.Page < 0 {
		return fmt.Errorf("page must be at least 1")
	}

	if filter.ParentType != nil && !models.IsValidParentType(*filter.ParentType) {
		return fmt.Errorf("parentType must be one of: %s, %s", models.ParentTypeProject, models.ParentTypeTask)
	}

	return nil
}
