// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/worklane/worklane-api/internal/database/postgres"
	"github.com/worklane/worklane-api/notifications/models"
)

// postgresNotificationRepository implements NotificationRepository using raw SQL queries
type postgresNotificationRepository struct {
	client *postgres.Client
}

// NewPostgresNotificationRepository creates a new PostgreSQL repository for notifications
func NewPostgresNotificationRepository(client *postgres.Client) NotificationRepository {
	return &postgresNotificationRepository{client: client}
}

// Create inserts a new notification row
func (r *postgresNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, type, message, entity_type, entity_id, is_read, created_at)
		VALUES (:id, :recipient_id, :sender_id, :type, :message, :entity_type, :entity_id, :is_read, :created_at)`

	_, err := sqlx.NamedExecContext(ctx, r.client.ExecutorFrom(ctx), query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// FindByRecipient returns notifications for a user, newest first
func (r *postgresNotificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter *NotificationFilter) ([]*models.Notification, error) {
	builder := sq.Select("id", "recipient_id", "sender_id", "type", "message", "entity_type", "entity_id", "is_read", "created_at").
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID.String()}).
		OrderBy("created_at DESC, id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter != nil {
		if filter.UnreadOnly {
			builder = builder.Where(sq.Eq{"is_read": false})
		}
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notifications query: %w", err)
	}

	notifications := []*models.Notification{}
	err = sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user
func (r *postgresNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`

	var count int64
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &count, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks a single notification as read, scoped to the recipient
func (r *postgresNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// MarkAllRead marks every unread notification for the recipient as read
func (r *postgresNotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE recipient_id = $1 AND is_read = FALSE`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
