package interfaces

import (
	"context"

	"github.com/gofrs/uuid"
)

// CommentCreatedEvent carries everything the notification dispatcher needs to
// resolve recipients for a freshly persisted comment. Events reference only
// committed state; dispatch runs after the comment write succeeds.
type CommentCreatedEvent struct {
	CommentID  uuid.UUID
	AuthorID   uuid.UUID
	ParentType string
	ParentID   uuid.UUID
	ReplyTo    *uuid.UUID
}

// CommentNotifier is the public interface the comments service uses to fan out
// notifications. Implementations are best-effort: they log and swallow
// per-recipient failures and never return an error to the triggering write.
type CommentNotifier interface {
	NotifyCommentCreated(ctx context.Context, event CommentCreatedEvent)
}
