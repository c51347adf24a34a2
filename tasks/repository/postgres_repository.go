// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/worklane/worklane-api/internal/database/postgres"
	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
	"github.com/worklane/worklane-api/tasks/models"
)

// postgresTaskRepository implements TaskRepository using raw SQL queries
type postgresTaskRepository struct {
	client *postgres.Client
}

// NewPostgresTaskRepository creates a new PostgreSQL repository for tasks
func NewPostgresTaskRepository(client *postgres.Client) TaskRepository {
	return &postgresTaskRepository{client: client}
}

// FindByID retrieves a task by its ID
func (r *postgresTaskRepository) FindByID(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	query := `
		SELECT id, project_id, assignee_id, title, status, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var task models.Task
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &task, query, taskID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", taskID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return &task, nil
}

// taskReaderAdapter exposes the repository through the shared TaskReader
// interface other modules depend on.
type taskReaderAdapter struct {
	repo TaskRepository
}

// NewTaskReader wraps a TaskRepository as a shared TaskReader
func NewTaskReader(repo TaskRepository) sharedInterfaces.TaskReader {
	return &taskReaderAdapter{repo: repo}
}

// GetTask resolves the task slice the comment core needs
func (a *taskReaderAdapter) GetTask(ctx context.Context, taskID uuid.UUID) (*sharedInterfaces.TaskInfo, error) {
	task, err := a.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return &sharedInterfaces.TaskInfo{
		ID:         task.ID,
		ProjectID:  task.ProjectID,
		AssigneeID: task.AssigneeID,
		Title:      task.Title,
	}, nil
}
