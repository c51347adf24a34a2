// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/notifications/models"
)

// NotificationFilter narrows FindByRecipient results
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create inserts a new notification row
	Create(ctx context.Context, notification *models.Notification) error

	// FindByRecipient returns notifications for a user, newest first
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter *NotificationFilter) ([]*models.Notification, error)

	// CountUnread returns the number of unread notifications for a user
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read, scoped to the recipient.
	// Returns the number of rows updated (0 means not found or not owned).
	MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) (int64, error)

	// MarkAllRead marks every unread notification for the recipient as read
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
