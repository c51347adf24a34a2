package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"

	commentsErrors "github.com/worklane/worklane-api/comments/errors"
	"github.com/worklane/worklane-api/comments/models"
	commentRepository "github.com/worklane/worklane-api/comments/repository"
	"github.com/worklane/worklane-api/comments/thread"
	"github.com/worklane/worklane-api/internal/pkg/log"
	"github.com/worklane/worklane-api/internal/types"
	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
)

const (
	defaultCommentLimit = 10
	maxCommentLimit     = 100
	defaultCommentPage  = 1
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo commentRepository.CommentRepository
	projects    sharedInterfaces.ProjectReader
	tasks       sharedInterfaces.TaskReader
	notifier    sharedInterfaces.CommentNotifier
}

// NewCommentService wires the comment service with its dependencies. The
// notifier may be nil, in which case creation skips dispatch entirely.
func NewCommentService(
	commentRepo commentRepository.CommentRepository,
	projects sharedInterfaces.ProjectReader,
	tasks sharedInterfaces.TaskReader,
	notifier sharedInterfaces.CommentNotifier,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		projects:    projects,
		tasks:       tasks,
		notifier:    notifier,
	}
}

// CreateComment validates and persists a new comment, then links files and
// dispatches notifications. Attachment failures and notification failures
// never roll back the created comment.
func (s *commentService) CreateComment(ctx context.Context, req *models.CreateCommentRequest, user *types.UserContext) (*models.CreateCommentResult, error) {
	if req == nil {
		return nil, fmt.Errorf("create comment request is required")
	}
	if user == nil {
		return nil, fmt.Errorf("user context is required")
	}

	if len(strings.TrimSpace(req.Content)) == 0 && len(req.FileIDs) == 0 {
		return nil, fmt.Errorf("%w: content is required when no attachments are provided", commentsErrors.ErrInvalidCommentData)
	}

	if err := s.checkParentEntity(ctx, req.ParentType, req.ParentID); err != nil {
		return nil, err
	}

	if req.ReplyTo != nil && *req.ReplyTo != uuid.Nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ReplyTo)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, commentsErrors.ErrCommentNotFound
			}
			return nil, fmt.Errorf("failed to find parent comment: %w", err)
		}

		// A reply must stay inside its parent's thread
		if parent.ParentType != req.ParentType || parent.ParentID != req.ParentID {
			return nil, commentsErrors.ErrCrossThreadReply
		}
	}

	commentID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment ID: %w", err)
	}

	comment := &models.Comment{
		ID:         commentID,
		AuthorID:   user.UserID,
		ParentType: req.ParentType,
		ParentID:   req.ParentID,
		Content:    req.Content,
		ReplyTo:    req.ReplyTo,
		IsEdited:   false,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if strings.Contains(err.Error(), "user does not exist") {
				return nil, commentsErrors.ErrUserNotFound
			}
			return nil, commentsErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	result := &models.CreateCommentResult{Comment: comment}

	// Link files one by one; a failure on file N must not undo files 1..N-1.
	for _, fileID := range req.FileIDs {
		if _, err := s.commentRepo.AddAttachment(ctx, comment.ID, fileID); err != nil {
			log.WarnWithContext(ctx, "failed to attach file %s to comment %s: %v", fileID, comment.ID, err)
			result.FailedFiles = append(result.FailedFiles, models.AttachmentFailure{
				FileID: fileID,
				Reason: err.Error(),
			})
			continue
		}
		result.AttachedFiles++
	}

	s.dispatchCreated(ctx, comment)

	return result, nil
}

// dispatchCreated hands the committed comment to the notifier. Dispatch is
// best-effort; nothing here can fail the create.
func (s *commentService) dispatchCreated(ctx context.Context, comment *models.Comment) {
	if s.notifier == nil {
		return
	}

	s.notifier.NotifyCommentCreated(ctx, sharedInterfaces.CommentCreatedEvent{
		CommentID:  comment.ID,
		AuthorID:   comment.AuthorID,
		ParentType: comment.ParentType,
		ParentID:   comment.ParentID,
		ReplyTo:    comment.ReplyTo,
	})
}

// checkParentEntity verifies the thread's owning project or task exists
func (s *commentService) checkParentEntity(ctx context.Context, parentType string, parentID uuid.UUID) error {
	switch parentType {
	case models.ParentTypeProject:
		if s.projects == nil {
			return nil
		}
		if _, err := s.projects.GetProject(ctx, parentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return commentsErrors.ErrParentNotFound
			}
			return fmt.Errorf("failed to resolve project: %w", err)
		}
	case models.ParentTypeTask:
		if s.tasks == nil {
			return nil
		}
		if _, err := s.tasks.GetTask(ctx, parentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return commentsErrors.ErrParentNotFound
			}
			return fmt.Errorf("failed to resolve task: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown parent type %q", commentsErrors.ErrInvalidCommentData, parentType)
	}
	return nil
}

// GetThread returns the hierarchical discussion tree for one parent entity.
// The tree is recomputed from the flat rows on every call; there is no cached
// tree state that could drift from storage under concurrent writers.
func (s *commentService) GetThread(ctx context.Context, parentType string, parentID uuid.UUID) (*models.ThreadResponse, error) {
	if !models.IsValidParentType(parentType) {
		return nil, fmt.Errorf("%w: unknown parent type %q", commentsErrors.ErrInvalidCommentData, parentType)
	}

	rows, err := s.commentRepo.FindThread(ctx, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}

	if len(rows) > 0 {
		ids := make([]uuid.UUID, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}

		attachments, err := s.commentRepo.FindAttachmentsForComments(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load thread attachments: %w", err)
		}
		likes, err := s.commentRepo.CountLikesForComments(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load thread likes: %w", err)
		}

		for _, row := range rows {
			row.Attachments = attachments[row.ID]
			row.LikeCount = likes[row.ID]
		}
	}

	return &models.ThreadResponse{
		Comments: thread.Build(rows),
		Count:    len(rows),
	}, nil
}

// GetComment returns a single comment by ID
func (s *commentService) GetComment(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, commentsErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// UpdateComment edits a comment's content. Author-only; authorization is
// checked before any mutation.
func (s *commentService) UpdateComment(ctx context.Context, commentID uuid.UUID, req *models.UpdateCommentRequest, user *types.UserContext) (*models.Comment, error) {
	if req == nil {
		return nil, fmt.Errorf("update comment request is required")
	}
	if user == nil {
		return nil, fmt.Errorf("user context is required")
	}

	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != user.UserID {
		return nil, commentsErrors.ErrNotCommentAuthor
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, commentsErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment and its entire reply subtree, together with
// every attachment link and like in the subtree, inside one transaction.
//
// Only the top-level target's author is checked: deleting one's own comment
// implicitly removes descendant replies regardless of who wrote them. The
// subtree is collected level by level with a work list rather than recursion,
// and deleted leaves-first so row deletes never orphan a child.
func (s *commentService) DeleteComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) (*models.DeleteCommentResponse, error) {
	if user == nil {
		return nil, fmt.Errorf("user context is required")
	}

	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != user.UserID {
		return nil, commentsErrors.ErrNotCommentAuthor
	}

	var deletedComments, deletedLinks int64

	err = s.commentRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		levels, err := s.collectSubtreeLevels(txCtx, commentID)
		if err != nil {
			return err
		}

		for i := len(levels) - 1; i >= 0; i-- {
			ids := levels[i]

			links, err := s.commentRepo.DeleteAttachmentLinks(txCtx, ids)
			if err != nil {
				return err
			}
			deletedLinks += links

			if _, err := s.commentRepo.DeleteLikes(txCtx, ids); err != nil {
				return err
			}

			rows, err := s.commentRepo.DeleteByIDs(txCtx, ids)
			if err != nil {
				return err
			}
			deletedComments += rows
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", commentsErrors.ErrDeletionFailed, err)
	}

	log.InfoWithContext(ctx, "deleted comment subtree root=%s comments=%d links=%d", commentID, deletedComments, deletedLinks)

	return &models.DeleteCommentResponse{
		DeletedComments: deletedComments,
		DeletedLinks:    deletedLinks,
	}, nil
}

// collectSubtreeLevels expands the deletion frontier one reply level at a
// time. Level 0 is the root; level i+1 holds the direct replies of level i.
// Reply chains cannot cycle (replyTo only ever references an already
// persisted id), but visited ids are still tracked so corrupt data cannot
// loop the traversal.
func (s *commentService) collectSubtreeLevels(ctx context.Context, rootID uuid.UUID) ([][]uuid.UUID, error) {
	levels := [][]uuid.UUID{{rootID}}
	seen := map[uuid.UUID]bool{rootID: true}
	frontier := []uuid.UUID{rootID}

	for len(frontier) > 0 {
		replies, err := s.commentRepo.FindReplyIDs(ctx, frontier)
		if err != nil {
			return nil, err
		}

		next := make([]uuid.UUID, 0, len(replies))
		for _, id := range replies {
			if seen[id] {
				continue
			}
			seen[id] = true
			next = append(next, id)
		}

		if len(next) == 0 {
			break
		}
		levels = append(levels, next)
		frontier = next
	}

	return levels, nil
}

// LikeComment records a like for a comment
func (s *commentService) LikeComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("user context is required")
	}

	created, err := s.commentRepo.AddLike(ctx, commentID, user.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return commentsErrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to like comment: %w", err)
	}
	if !created {
		return commentsErrors.ErrAlreadyLiked
	}

	return nil
}

// UnlikeComment removes a like; removing a non-existent like is a no-op
func (s *commentService) UnlikeComment(ctx context.Context, commentID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("user context is required")
	}

	if _, err := s.commentRepo.RemoveLike(ctx, commentID, user.UserID); err != nil {
		return fmt.Errorf("failed to unlike comment: %w", err)
	}

	return nil
}

// AttachFile links an uploaded file to an existing comment. Author-only.
func (s *commentService) AttachFile(ctx context.Context, commentID, fileID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("user context is required")
	}

	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != user.UserID {
		return commentsErrors.ErrNotCommentAuthor
	}

	if _, err := s.commentRepo.AddAttachment(ctx, commentID, fileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: file %s", commentsErrors.ErrInvalidCommentData, fileID)
		}
		return fmt.Errorf("failed to attach file: %w", err)
	}

	return nil
}

// DetachFile removes a file link from a comment. Author-only. The file row
// itself is untouched; it may be referenced elsewhere.
func (s *commentService) DetachFile(ctx context.Context, commentID, fileID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("user context is required")
	}

	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != user.UserID {
		return commentsErrors.ErrNotCommentAuthor
	}

	removed, err := s.commentRepo.RemoveAttachment(ctx, commentID, fileID)
	if err != nil {
		return fmt.Errorf("failed to detach file: %w", err)
	}
	if !removed {
		return commentsErrors.ErrAttachmentNotFound
	}

	return nil
}

// QueryComments executes a filtered paginated flat listing
func (s *commentService) QueryComments(ctx context.Context, filter *models.CommentQueryFilter) (*models.CommentsListResponse, error) {
	if filter == nil {
		return nil, fmt.Errorf("filter is required")
	}

	sanitizePagination(filter)

	repoFilter := commentRepository.CommentFilter{
		ParentType: filter.ParentType,
		ParentID:   filter.ParentID,
		AuthorID:   filter.AuthorID,
		RootOnly:   filter.RootOnly,
	}

	limit := filter.Limit
	offset := (filter.Page - 1) * filter.Limit

	comments, err := s.commentRepo.Find(ctx, repoFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	totalCount, err := s.commentRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &models.CommentsListResponse{
		Comments: comments,
		Count:    int(totalCount),
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func sanitizePagination(filter *models.CommentQueryFilter) {
	if filter.Limit <= 0 {
		filter.Limit = defaultCommentLimit
	} else if filter.Limit > maxCommentLimit {
		filter.Limit = maxCommentLimit
	}
	if filter.Page <= 0 {
		filter.Page = defaultCommentPage
	}
}
