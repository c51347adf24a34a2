// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/tasks/models"
)

// TaskRepository defines the interface for task database operations used by
// the comment core: thread scoping and notification recipients.
type TaskRepository interface {
	// FindByID retrieves a task by its ID
	FindByID(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
}
