package interfaces

import (
	"context"

	"github.com/gofrs/uuid"
)

// ProjectInfo is the slice of a project the comment core needs: thread
// scoping, notification recipients, and message text.
type ProjectInfo struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string
}

// TaskInfo is the slice of a task the comment core needs. AssigneeID is nil
// for unassigned tasks.
type TaskInfo struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	AssigneeID *uuid.UUID
	Title      string
}

// ProjectReader exposes project lookups to other modules
type ProjectReader interface {
	GetProject(ctx context.Context, projectID uuid.UUID) (*ProjectInfo, error)
}

// TaskReader exposes task lookups to other modules
type TaskReader interface {
	GetTask(ctx context.Context, taskID uuid.UUID) (*TaskInfo, error)
}
