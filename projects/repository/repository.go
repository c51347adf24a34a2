// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/projects/models"
)

// ProjectRepository defines the interface for project database operations
// used by the comment core: thread scoping and notification recipients.
type ProjectRepository interface {
	// FindByID retrieves a project by its ID
	FindByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
}
