package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/internal/pkg/log"
	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
	storageErrors "github.com/worklane/worklane-api/storage/errors"
	"github.com/worklane/worklane-api/storage/models"
	"github.com/worklane/worklane-api/storage/provider"
	storageRepository "github.com/worklane/worklane-api/storage/repository"
)

const (
	// DefaultProvider is the provider label recorded on new file rows
	DefaultProvider = "s3"

	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = 24 * time.Hour
)

type service struct {
	repo     storageRepository.Repository
	provider provider.BlobProvider
	config   *platformconfig.StorageConfig
}

// NewStorageService creates a new storage service
func NewStorageService(repo storageRepository.Repository, blobProvider provider.BlobProvider, config *platformconfig.StorageConfig) StorageService {
	return &service{
		repo:     repo,
		provider: blobProvider,
		config:   config,
	}
}

// InitializeUpload creates a pending file record and returns a presigned URL
// the client uploads to directly. The record stays pending until ConfirmUpload.
func (s *service) InitializeUpload(ctx context.Context, req *models.UploadRequest, userID uuid.UUID) (*models.UploadResponse, error) {
	if req.Name == "" || req.ContentType == "" || req.Size <= 0 {
		return nil, storageErrors.ErrInvalidRequest
	}

	maxSize := int64(s.config.MaxFileSizeMB) * 1024 * 1024
	if req.Size > maxSize {
		return nil, fmt.Errorf("%w: max %d MB", storageErrors.ErrFileTooLarge, s.config.MaxFileSizeMB)
	}

	if !s.isMimeTypeAllowed(req.ContentType) {
		return nil, fmt.Errorf("%w: %s", storageErrors.ErrInvalidMimeType, req.ContentType)
	}

	// Storage key: users/{userID}/{uuid}.{ext}
	fileID := uuid.Must(uuid.NewV4())
	ext := filepath.Ext(req.Name)
	key := fmt.Sprintf("users/%s/%s%s", userID.String(), fileID.String(), ext)

	now := time.Now().UTC()
	file := &models.File{
		ID:          fileID,
		OwnerUserID: userID,
		Name:        req.Name,
		Path:        key,
		MimeType:    req.ContentType,
		SizeBytes:   req.Size,
		Provider:    DefaultProvider,
		Bucket:      s.config.BucketName,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	// Presigned PUT with a strict Content-Length constraint
	uploadURL, err := s.provider.GeneratePresignedUploadURL(ctx, key, req.ContentType, req.Size, uploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &models.UploadResponse{
		UploadURL: uploadURL,
		FileID:    fileID,
		Key:       key,
	}, nil
}

// isMimeTypeAllowed checks if the MIME type is in the allowed list
func (s *service) isMimeTypeAllowed(mimeType string) bool {
	if len(s.config.AllowedMimeTypes) == 0 {
		return true
	}
	for _, allowed := range s.config.AllowedMimeTypes {
		if strings.EqualFold(mimeType, allowed) {
			return true
		}
	}
	return false
}

// ConfirmUpload verifies the uploaded object and flips the record to uploaded,
// recording the durable URL comment attachments display
func (s *service) ConfirmUpload(ctx context.Context, fileID uuid.UUID, userID uuid.UUID) (*models.File, error) {
	file, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		return nil, storageErrors.ErrFileNotFound
	}

	if file.OwnerUserID != userID {
		return nil, storageErrors.ErrNotFileOwner
	}

	if file.Status != models.StatusPending {
		return nil, storageErrors.ErrFileNotPending
	}

	// Verify the object actually landed and matches the declared size
	size, err := s.provider.GetMetadata(ctx, file.Path)
	if err != nil {
		return nil, fmt.Errorf("file not found in storage: %w", err)
	}
	if size != file.SizeBytes {
		log.Warn("Uploaded size mismatch for file %s: declared=%d actual=%d", fileID, file.SizeBytes, size)
	}

	url, err := s.provider.GeneratePresignedDownloadURL(ctx, file.Path, downloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate file URL: %w", err)
	}

	if err := s.repo.MarkUploaded(ctx, fileID, url); err != nil {
		return nil, fmt.Errorf("failed to update file status: %w", err)
	}

	file.Status = models.StatusUploaded
	file.URL = url
	return file, nil
}

// DeleteFile deletes a file (soft delete + physical delete from storage)
func (s *service) DeleteFile(ctx context.Context, fileID uuid.UUID, userID uuid.UUID) error {
	file, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		return storageErrors.ErrFileNotFound
	}

	if file.OwnerUserID != userID {
		return storageErrors.ErrNotFileOwner
	}

	// DB delete proceeds even when the blob delete fails
	if err := s.provider.Delete(ctx, file.Path); err != nil {
		log.Error("Failed to delete file from storage: error=%v, path=%s", err, file.Path)
	}

	if err := s.repo.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

// GetFileURL returns the public CDN URL or presigned download URL for a file
func (s *service) GetFileURL(ctx context.Context, fileID uuid.UUID, userID uuid.UUID) (*models.FileURLResponse, error) {
	file, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		return nil, storageErrors.ErrFileNotFound
	}

	if file.OwnerUserID != userID {
		return nil, storageErrors.ErrNotFileOwner
	}

	if file.Status != models.StatusUploaded {
		return nil, storageErrors.ErrFileNotReady
	}

	url, err := s.provider.GeneratePresignedDownloadURL(ctx, file.Path, downloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate file URL: %w", err)
	}

	return &models.FileURLResponse{FileID: fileID, URL: url}, nil
}
