// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	commentModels "github.com/worklane/worklane-api/comments/models"
	profileModels "github.com/worklane/worklane-api/profile/models"
	profileRepository "github.com/worklane/worklane-api/profile/repository"
	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
)

// MockCommentReader is a mock implementation of CommentReader
type MockCommentReader struct {
	mock.Mock
}

var _ CommentReader = (*MockCommentReader)(nil)

func (m *MockCommentReader) FindByID(ctx context.Context, commentID uuid.UUID) (*commentModels.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commentModels.Comment), args.Error(1)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

var _ profileRepository.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) FindByID(ctx context.Context, userID uuid.UUID) (*profileModels.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileModels.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *profileModels.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockProjectReader is a mock implementation of the shared ProjectReader
type MockProjectReader struct {
	mock.Mock
}

var _ sharedInterfaces.ProjectReader = (*MockProjectReader)(nil)

func (m *MockProjectReader) GetProject(ctx context.Context, projectID uuid.UUID) (*sharedInterfaces.ProjectInfo, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharedInterfaces.ProjectInfo), args.Error(1)
}

// MockTaskReader is a mock implementation of the shared TaskReader
type MockTaskReader struct {
	mock.Mock
}

var _ sharedInterfaces.TaskReader = (*MockTaskReader)(nil)

func (m *MockTaskReader) GetTask(ctx context.Context, taskID uuid.UUID) (*sharedInterfaces.TaskInfo, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharedInterfaces.TaskInfo), args.Error(1)
}
