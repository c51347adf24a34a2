// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// File statuses
const (
	StatusPending  = "pending"
	StatusUploaded = "uploaded"
	StatusDeleted  = "deleted"
)

// File represents a file record in the database
type File struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerUserID uuid.UUID `db:"owner_user_id" json:"ownerUserId"`
	Name        string    `db:"name" json:"name"`
	Path        string    `db:"path" json:"path"`
	URL         string    `db:"url" json:"url"`
	MimeType    string    `db:"mime_type" json:"mimeType"`
	SizeBytes   int64     `db:"size_bytes" json:"sizeBytes"`
	Provider    string    `db:"provider" json:"provider"`
	Bucket      string    `db:"bucket" json:"bucket"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// UploadRequest represents the request payload for initializing an upload
type UploadRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// UploadResponse represents the response after initializing an upload
type UploadResponse struct {
	UploadURL string    `json:"uploadUrl"` // Presigned URL for direct upload
	FileID    uuid.UUID `json:"fileId"`
	Key       string    `json:"key"` // Storage key (path in bucket)
}

// ConfirmUploadRequest represents the request to confirm an upload
type ConfirmUploadRequest struct {
	FileID uuid.UUID `json:"fileId"`
}

// FileURLResponse carries a resolved download URL
type FileURLResponse struct {
	FileID uuid.UUID `json:"fileId"`
	URL    string    `json:"url"`
}
