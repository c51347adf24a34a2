package validation

import (
	"strings"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/worklane/worklane-api/comments/models"
)

func TestValidateCreateCommentRequest(t *testing.T) {
	parentID := uuid.Must(uuid.NewV4())

	valid := func() *models.CreateCommentRequest {
		return &models.CreateCommentRequest{
			ParentType: models.ParentTypeProject,
			ParentID:   parentID,
			Content:    "a comment",
		}
	}

	t.Run("Valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreateCommentRequest(valid()))
	})

	t.Run("Nil request rejected", func(t *testing.T) {
		assert.Error(t, ValidateCreateCommentRequest(nil))
	})

	t.Run("Unknown parent type rejected", func(t *testing.T) {
		req := valid()
		req.ParentType = "sprint"
		assert.Error(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Zero parent id rejected", func(t *testing.T) {
		req := valid()
		req.ParentID = uuid.Nil
		assert.Error(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Empty content without attachments rejected", func(t *testing.T) {
		req := valid()
		req.Content = "  \t "
		assert.Error(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Empty content with an attachment allowed", func(t *testing.T) {
		req := valid()
		req.Content = ""
		req.FileIDs = []uuid.UUID{uuid.Must(uuid.NewV4())}
		assert.NoError(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Oversized content rejected", func(t *testing.T) {
		req := valid()
		req.Content = strings.Repeat("x", maxContentLength+1)
		assert.Error(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Zero replyTo rejected", func(t *testing.T) {
		req := valid()
		zero := uuid.Nil
		req.ReplyTo = &zero
		assert.Error(t, ValidateCreateCommentRequest(req))
	})

	t.Run("Zero file id rejected", func(t *testing.T) {
		req := valid()
		req.FileIDs = []uuid.UUID{uuid.Nil}
		assert.Error(t, ValidateCreateCommentRequest(req))
	})
}

func TestValidateUpdateCommentRequest(t *testing.T) {
	t.Run("Valid content passes", func(t *testing.T) {
		assert.NoError(t, ValidateUpdateCommentRequest(&models.UpdateCommentRequest{Content: "edited"}))
	})

	t.Run("Whitespace-only content rejected", func(t *testing.T) {
		assert.Error(t, ValidateUpdateCommentRequest(&models.UpdateCommentRequest{Content: "   "}))
	})

	t.Run("Oversized content rejected", func(t *testing.T) {
		assert.Error(t, ValidateUpdateCommentRequest(&models.UpdateCommentRequest{
			Content: strings.Repeat("x", maxContentLength+1),
		}))
	})
}

func TestValidateCommentQueryFilter(t *testing.T) {
	t.Run("Defaults pass", func(t *testing.T) {
		assert.NoError(t, ValidateCommentQueryFilter(&models.CommentQueryFilter{}))
	})

	t.Run("Limit above maximum rejected", func(t *testing.T) {
		assert.Error(t, ValidateCommentQueryFilter(&models.CommentQueryFilter{Limit: 500}))
	})

	t.Run("Invalid parent type rejected", func(t *testing.T) {
		bad := "sprint"
		assert.Error(t, ValidateCommentQueryFilter(&models.CommentQueryFilter{ParentType: &bad}))
	})
}
