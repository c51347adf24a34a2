// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/profile/models"
)

// ProfileRepository defines the interface for profile database operations
type ProfileRepository interface {
	// FindByID retrieves a profile by user ID
	FindByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

	// Upsert inserts or updates a profile's display fields
	Upsert(ctx context.Context, profile *models.Profile) error
}
