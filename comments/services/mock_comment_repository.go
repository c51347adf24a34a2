// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/worklane/worklane-api/comments/models"
	commentRepository "github.com/worklane/worklane-api/comments/repository"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing
type MockCommentRepository struct {
	mock.Mock
}

// Ensure MockCommentRepository implements CommentRepository
var _ commentRepository.CommentRepository = (*MockCommentRepository)(nil)

// Create mocks the Create method
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockCommentRepository) FindByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

// FindThread mocks the FindThread method
func (m *MockCommentRepository) FindThread(ctx context.Context, parentType string, parentID uuid.UUID) ([]*models.ThreadComment, error) {
	args := m.Called(ctx, parentType, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ThreadComment), args.Error(1)
}

// Find mocks the Find method
func (m *MockCommentRepository) Find(ctx context.Context, filter commentRepository.CommentFilter, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// Count mocks the Count method
func (m *MockCommentRepository) Count(ctx context.Context, filter commentRepository.CommentFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Update mocks the Update method
func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// FindReplyIDs mocks the FindReplyIDs method
func (m *MockCommentRepository) FindReplyIDs(ctx context.Context, parentIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// DeleteByIDs mocks the DeleteByIDs method
func (m *MockCommentRepository) DeleteByIDs(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteAttachmentLinks mocks the DeleteAttachmentLinks method
func (m *MockCommentRepository) DeleteAttachmentLinks(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteLikes mocks the DeleteLikes method
func (m *MockCommentRepository) DeleteLikes(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(int64), args.Error(1)
}

// AddAttachment mocks the AddAttachment method
func (m *MockCommentRepository) AddAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, commentID, fileID)
	return args.Bool(0), args.Error(1)
}

// RemoveAttachment mocks the RemoveAttachment method
func (m *MockCommentRepository) RemoveAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, commentID, fileID)
	return args.Bool(0), args.Error(1)
}

// FindAttachmentsForComments mocks the FindAttachmentsForComments method
func (m *MockCommentRepository) FindAttachmentsForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID][]models.AttachmentRef, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]models.AttachmentRef), args.Error(1)
}

// AddLike mocks the AddLike method
func (m *MockCommentRepository) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

// RemoveLike mocks the RemoveLike method
func (m *MockCommentRepository) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

// CountLikesForComments mocks the CountLikesForComments method
func (m *MockCommentRepository) CountLikesForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockCommentRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
