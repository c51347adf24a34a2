package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	notificationErrors "github.com/worklane/worklane-api/notifications/errors"
	"github.com/worklane/worklane-api/notifications/models"
	"github.com/worklane/worklane-api/notifications/repository"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// notificationService implements the NotificationService interface
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new instance of the notification service
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns a page of the user's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, filter *models.NotificationQueryFilter) (*models.NotificationsListResponse, error) {
	if filter == nil {
		filter = &models.NotificationQueryFilter{}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	repoFilter := &repository.NotificationFilter{
		UnreadOnly: filter.UnreadOnly,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	notifications, err := s.notificationRepo.FindByRecipient(ctx, recipientID, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &models.NotificationsListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
	}, nil
}

// MarkRead marks one notification as read. The recipient scope in the
// repository query doubles as the authorization check.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	updated, err := s.notificationRepo.MarkRead(ctx, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if updated == 0 {
		return notificationErrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all of the user's unread notifications as read
func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (*models.MarkReadResponse, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return &models.MarkReadResponse{Updated: updated}, nil
}
