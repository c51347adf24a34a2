// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
)

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

// MockCommentNotifier is a mock implementation of the shared CommentNotifier
type MockCommentNotifier struct {
	mock.Mock
}

var _ sharedInterfaces.CommentNotifier = (*MockCommentNotifier)(nil)

func (m *MockCommentNotifier) NotifyCommentCreated(ctx context.Context, event sharedInterfaces.CommentCreatedEvent) {
	m.Called(ctx, event)
}
