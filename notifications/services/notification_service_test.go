// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationErrors "github.com/worklane/worklane-api/notifications/errors"
	"github.com/worklane/worklane-api/notifications/models"
	"github.com/worklane/worklane-api/notifications/repository"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.Must(uuid.NewV4())

	t.Run("Applies pagination defaults", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByRecipient", ctx, recipient, &repository.NotificationFilter{
			Limit: defaultNotificationLimit,
		}).Return([]*models.Notification{}, nil)
		mockRepo.On("CountUnread", ctx, recipient).Return(int64(4), nil)

		response, err := service.ListNotifications(ctx, recipient, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, response.Page)
		assert.Equal(t, defaultNotificationLimit, response.Limit)
		assert.Equal(t, int64(4), response.UnreadCount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unread filter and offset forwarded", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByRecipient", ctx, recipient, &repository.NotificationFilter{
			UnreadOnly: true,
			Limit:      50,
			Offset:     100,
		}).Return([]*models.Notification{}, nil)
		mockRepo.On("CountUnread", ctx, recipient).Return(int64(0), nil)

		_, err := service.ListNotifications(ctx, recipient, &models.NotificationQueryFilter{
			UnreadOnly: true,
			Page:       3,
			Limit:      50,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.Must(uuid.NewV4())
	notificationID := uuid.Must(uuid.NewV4())

	t.Run("Marks own notification", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("MarkRead", ctx, notificationID, recipient).Return(int64(1), nil)

		assert.NoError(t, service.MarkRead(ctx, notificationID, recipient))
	})

	t.Run("Unknown or foreign notification reports not found", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("MarkRead", ctx, notificationID, recipient).Return(int64(0), nil)

		err := service.MarkRead(ctx, notificationID, recipient)
		assert.ErrorIs(t, err, notificationErrors.ErrNotificationNotFound)
	})

	t.Run("Mark all reports the updated count", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("MarkAllRead", ctx, recipient).Return(int64(7), nil)

		response, err := service.MarkAllRead(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, int64(7), response.Updated)
	})
}
