// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Notification types
const (
	TypeNewComment          = "new_comment"
	TypeTaskAssigned        = "task_assigned"
	TypeApplicationAccepted = "application_accepted"
)

// Entity types a notification can point at
const (
	EntityTypeComment = "comment"
	EntityTypeTask    = "task"
	EntityTypeProject = "project"
)

// Notification represents a single delivery to one recipient
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID uuid.UUID `json:"recipientId" db:"recipient_id"`
	SenderID    uuid.UUID `json:"senderId" db:"sender_id"`
	Type        string    `json:"type" db:"type"`
	Message     string    `json:"message" db:"message"`
	EntityType  string    `json:"entityType" db:"entity_type"`
	EntityID    uuid.UUID `json:"entityId" db:"entity_id"`
	IsRead      bool      `json:"isRead" db:"is_read"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// NotificationQueryFilter represents query parameters for listing notifications
type NotificationQueryFilter struct {
	UnreadOnly bool `schema:"unreadOnly"`
	Page       int  `schema:"page"`
	Limit      int  `schema:"limit"`
}

// NotificationsListResponse is the paginated list payload
type NotificationsListResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int64           `json:"unreadCount"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
}

// MarkReadResponse reports how many notifications were updated
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
