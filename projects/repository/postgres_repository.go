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
	"github.com/worklane/worklane-api/projects/models"
	sharedInterfaces "github.com/worklane/worklane-api/shared/interfaces"
)

// postgresProjectRepository implements ProjectRepository using raw SQL queries
type postgresProjectRepository struct {
	client *postgres.Client
}

// NewPostgresProjectRepository creates a new PostgreSQL repository for projects
func NewPostgresProjectRepository(client *postgres.Client) ProjectRepository {
	return &postgresProjectRepository{client: client}
}

// FindByID retrieves a project by its ID
func (r *postgresProjectRepository) FindByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := `
		SELECT id, owner_id, title, status, created_at, updated_at
		FROM projects
		WHERE id = $1`

	var project models.Project
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &project, query, projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", projectID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return &project, nil
}

// projectReaderAdapter exposes the repository through the shared ProjectReader
// interface other modules depend on.
type projectReaderAdapter struct {
	repo ProjectRepository
}

// NewProjectReader wraps a ProjectRepository as a shared ProjectReader
func NewProjectReader(repo ProjectRepository) sharedInterfaces.ProjectReader {
	return &projectReaderAdapter{repo: repo}
}

// GetProject resolves the project slice the comment core needs
func (a *projectReaderAdapter) GetProject(ctx context.Context, projectID uuid.UUID) (*sharedInterfaces.ProjectInfo, error) {
	project, err := a.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &sharedInterfaces.ProjectInfo{
		ID:      project.ID,
		OwnerID: project.OwnerID,
		Title:   project.Title,
	}, nil
}
