// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/notifications/models"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	// ListNotifications returns a page of the user's notifications, newest first
	ListNotifications(ctx context.Context, recipientID uuid.UUID, filter *models.NotificationQueryFilter) (*models.NotificationsListResponse, error)

	// MarkRead marks one notification as read. Only the recipient can do this.
	MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error

	// MarkAllRead marks all of the user's unread notifications as read
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (*models.MarkReadResponse, error)
}
