// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"context"
	"time"
)

// BlobProvider defines the interface for blob storage providers.
// The interface is provider-agnostic so the service layer works against
// any S3-compatible backend.
type BlobProvider interface {
	// GeneratePresignedUploadURL generates a URL for the client to upload a file directly (PUT).
	// contentLength enforces the exact file size at the storage level.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, contentLength int64, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL generates a URL for the client to view/download the file (GET).
	// For public buckets behind a CDN this returns the stable CDN URL instead.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Delete physically deletes the file from the storage provider
	Delete(ctx context.Context, key string) error

	// GetMetadata checks if file exists and returns its size (for validation)
	GetMetadata(ctx context.Context, key string) (size int64, err error)
}
