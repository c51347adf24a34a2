// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	commentModels "github.com/worklane/worklane-api/comments/models"
	"github.com/worklane/worklane-api/internal/pkg/log"
	"github.com/worklane/worklane-api/notifications/models"
	"github.com/worklane/worklane-api/notifications/repository"
	profileRepository "github.com/worklane/worklane-api/profile/repository"
	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
)

// DeliveryResult records the outcome of one attempted notification delivery
type DeliveryResult struct {
	RecipientID uuid.UUID
	Type        string
	Err         error
}

// CommentReader is the slice of the comment store the dispatcher needs to
// resolve reply targets.
type CommentReader interface {
	FindByID(ctx context.Context, commentID uuid.UUID) (*commentModels.Comment, error)
}

// CommentEventDispatcher fans a comment-created event out to the users who
// should hear about it. Delivery is best effort: each recipient is attempted
// independently and one failure never blocks the others.
type CommentEventDispatcher struct {
	notificationRepo repository.NotificationRepository
	commentRepo      CommentReader
	profileRepo      profileRepository.ProfileRepository
	projects         sharedInterfaces.ProjectReader
	tasks            sharedInterfaces.TaskReader
}

// NewCommentEventDispatcher creates a dispatcher wired to the given stores
func NewCommentEventDispatcher(
	notificationRepo repository.NotificationRepository,
	commentRepo CommentReader,
	profileRepo profileRepository.ProfileRepository,
	projects sharedInterfaces.ProjectReader,
	tasks sharedInterfaces.TaskReader,
) *CommentEventDispatcher {
	return &CommentEventDispatcher{
		notificationRepo: notificationRepo,
		commentRepo:      commentRepo,
		profileRepo:      profileRepo,
		projects:         projects,
		tasks:            tasks,
	}
}

var _ sharedInterfaces.CommentNotifier = (*CommentEventDispatcher)(nil)

// NotifyCommentCreated implements the shared CommentNotifier contract.
// Failures are logged, never returned: a comment that was written stays
// written even when every delivery fails.
func (d *CommentEventDispatcher) NotifyCommentCreated(ctx context.Context, event sharedInterfaces.CommentCreatedEvent) {
	results := d.Dispatch(ctx, event)
	for _, res := range results {
		if res.Err != nil {
			log.ErrorWithContext(ctx, "Failed to deliver %s notification to %s: %v", res.Type, res.RecipientID, res.Err)
		}
	}
}

// Dispatch resolves the recipient set for the event and writes one
// notification per recipient. Recipients are deduplicated and the comment
// author never notifies themselves. Each fan-out rule resolves independently:
// a rule that cannot be computed yields its own failed result and the
// recipients the other rules produced are still attempted.
func (d *CommentEventDispatcher) Dispatch(ctx context.Context, event sharedInterfaces.CommentCreatedEvent) []DeliveryResult {
	recipients, failures := d.resolveRecipients(ctx, event)
	if len(recipients) == 0 {
		return failures
	}

	message := d.buildMessage(ctx, event)

	results := make([]DeliveryResult, 0, len(recipients)+len(failures))
	results = append(results, failures...)
	for _, recipientID := range recipients {
		res := DeliveryResult{RecipientID: recipientID, Type: models.TypeNewComment}

		notificationID, err := uuid.NewV4()
		if err != nil {
			res.Err = fmt.Errorf("failed to generate notification ID: %w", err)
			results = append(results, res)
			continue
		}

		notification := &models.Notification{
			ID:          notificationID,
			RecipientID: recipientID,
			SenderID:    event.AuthorID,
			Type:        models.TypeNewComment,
			Message:     message,
			EntityType:  models.EntityTypeComment,
			EntityID:    event.CommentID,
			IsRead:      false,
			CreatedAt:   time.Now().UTC(),
		}

		if err := d.notificationRepo.Create(ctx, notification); err != nil {
			res.Err = err
		}
		results = append(results, res)
	}

	return results
}

// resolveRecipients applies the fan-out rules:
//   - reply: the parent comment's author
//   - root comment on a task: the task assignee and the project owner
//   - root comment on a project: the project owner
//
// A rule that cannot be computed is reported as a failed result without
// discarding the recipients the other rules already produced.
func (d *CommentEventDispatcher) resolveRecipients(ctx context.Context, event sharedInterfaces.CommentCreatedEvent) ([]uuid.UUID, []DeliveryResult) {
	candidates := []uuid.UUID{}
	failures := []DeliveryResult{}

	fail := func(err error) {
		failures = append(failures, DeliveryResult{Type: models.TypeNewComment, Err: err})
	}

	if event.ReplyTo != nil {
		parent, err := d.commentRepo.FindByID(ctx, *event.ReplyTo)
		if err != nil {
			fail(fmt.Errorf("failed to resolve parent comment: %w", err))
		} else {
			candidates = append(candidates, parent.AuthorID)
		}
	} else {
		switch event.ParentType {
		case commentModels.ParentTypeTask:
			task, err := d.tasks.GetTask(ctx, event.ParentID)
			if err != nil {
				fail(fmt.Errorf("failed to resolve task: %w", err))
				break
			}
			if task.AssigneeID != nil {
				candidates = append(candidates, *task.AssigneeID)
			}
			project, err := d.projects.GetProject(ctx, task.ProjectID)
			if err != nil {
				fail(fmt.Errorf("failed to resolve project: %w", err))
				break
			}
			candidates = append(candidates, project.OwnerID)
		case commentModels.ParentTypeProject:
			project, err := d.projects.GetProject(ctx, event.ParentID)
			if err != nil {
				fail(fmt.Errorf("failed to resolve project: %w", err))
				break
			}
			candidates = append(candidates, project.OwnerID)
		}
	}

	// Dedupe and drop the author
	seen := map[uuid.UUID]bool{event.AuthorID: true}
	recipients := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if seen[id] {
			continue
		}
		seen[id] = true
		recipients = append(recipients, id)
	}

	return recipients, failures
}

func (d *CommentEventDispatcher) buildMessage(ctx context.Context, event sharedInterfaces.CommentCreatedEvent) string {
	senderName := "Someone"
	if profile, err := d.profileRepo.FindByID(ctx, event.AuthorID); err == nil && profile.DisplayName != "" {
		senderName = profile.DisplayName
	}

	if event.ReplyTo != nil {
		return fmt.Sprintf("%s replied to your comment", senderName)
	}
	return fmt.Sprintf("%s commented on a %s you are involved in", senderName, event.ParentType)
}
