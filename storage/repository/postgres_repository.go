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
	"github.com/worklane/worklane-api/storage/models"
)

// postgresRepository implements Repository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for files
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

// Create inserts a new file record
func (r *postgresRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (id, owner_user_id, name, path, url, mime_type, size_bytes, provider, bucket, status, created_at, updated_at)
		VALUES (:id, :owner_user_id, :name, :path, :url, :mime_type, :size_bytes, :provider, :bucket, :status, :created_at, :updated_at)`

	_, err := sqlx.NamedExecContext(ctx, r.client.ExecutorFrom(ctx), query, file)
	if err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}

	return nil
}

// FindByID retrieves a file by its ID
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	query := `
		SELECT id, owner_user_id, name, path, url, mime_type, size_bytes, provider, bucket, status, created_at, updated_at
		FROM files
		WHERE id = $1 AND status != 'deleted'`

	var file models.File
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &file, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("file %s: %w", id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}

	return &file, nil
}

// FindByOwner retrieves files owned by a user, newest first
func (r *postgresRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.File, error) {
	query := `
		SELECT id, owner_user_id, name, path, url, mime_type, size_bytes, provider, bucket, status, created_at, updated_at
		FROM files
		WHERE owner_user_id = $1 AND status != 'deleted'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	files := []*models.File{}
	err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &files, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find files: %w", err)
	}

	return files, nil
}

// MarkUploaded flips a pending file to uploaded and records its durable URL
func (r *postgresRepository) MarkUploaded(ctx context.Context, id uuid.UUID, url string) error {
	query := `
		UPDATE files
		SET status = 'uploaded', url = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, id, url)
	if err != nil {
		return fmt.Errorf("failed to mark file uploaded: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("file %s: %w", id, sql.ErrNoRows)
	}

	return nil
}

// UpdateStatus updates the status of a file
func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE files SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("file %s: %w", id, sql.ErrNoRows)
	}

	return nil
}

// Delete soft deletes a file
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.UpdateStatus(ctx, id, models.StatusDeleted)
}
