// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Task represents a unit of work inside a project. AssigneeID is nil while
// the task is unassigned. Task CRUD lives outside this service; the comment
// core needs identity, assignment, and the owning project.
type Task struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	ProjectID  uuid.UUID  `json:"projectId" db:"project_id"`
	AssigneeID *uuid.UUID `json:"assigneeId,omitempty" db:"assignee_id"`
	Title      string     `json:"title" db:"title"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}
