// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/worklane/worklane-api/internal/database/postgres"
	"github.com/worklane/worklane-api/profile/models"
)

// postgresProfileRepository implements ProfileRepository using raw SQL queries
type postgresProfileRepository struct {
	client *postgres.Client
}

// NewPostgresProfileRepository creates a new PostgreSQL repository for profiles
func NewPostgresProfileRepository(client *postgres.Client) ProfileRepository {
	return &postgresProfileRepository{client: client}
}

// FindByID retrieves a profile by user ID
func (r *postgresProfileRepository) FindByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, display_name, avatar, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var profile models.Profile
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", userID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}

// Upsert inserts or updates a profile's display fields
func (r *postgresProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (id, display_name, avatar, created_at, updated_at)
		VALUES (:id, :display_name, :avatar, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    avatar = EXCLUDED.avatar,
		    updated_at = EXCLUDED.updated_at`

	if _, err := sqlx.NamedExecContext(ctx, r.client.ExecutorFrom(ctx), query, profile); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
