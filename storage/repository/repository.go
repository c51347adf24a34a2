// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/storage/models"
)

// Repository defines the interface for file storage database operations
type Repository interface {
	// Create inserts a new file record
	Create(ctx context.Context, file *models.File) error

	// FindByID retrieves a file by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.File, error)

	// FindByOwner retrieves files owned by a user
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.File, error)

	// MarkUploaded flips a pending file to uploaded and records its durable URL
	MarkUploaded(ctx context.Context, id uuid.UUID, url string) error

	// UpdateStatus updates the status of a file
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// Delete soft deletes a file (sets status to 'deleted')
	Delete(ctx context.Context, id uuid.UUID) error
}
