// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
	storageErrors "github.com/worklane/worklane-api/storage/errors"
	"github.com/worklane/worklane-api/storage/models"
)

func testConfig() *platformconfig.StorageConfig {
	return &platformconfig.StorageConfig{
		BucketName:       "test-bucket",
		MaxFileSizeMB:    10,
		AllowedMimeTypes: []string{"image/png", "application/pdf"},
	}
}

func TestStorageService_InitializeUpload(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("Creates pending record and presigned URL", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProvider := new(MockBlobProvider)
		service := NewStorageService(mockRepo, mockProvider, testConfig())

		mockRepo.On("Create", ctx, mock.MatchedBy(func(f *models.File) bool {
			return f.OwnerUserID == userID &&
				f.Status == models.StatusPending &&
				f.Bucket == "test-bucket" &&
				strings.HasPrefix(f.Path, fmt.Sprintf("users/%s/", userID)) &&
				strings.HasSuffix(f.Path, ".png")
		})).Return(nil)
		mockProvider.On("GeneratePresignedUploadURL", ctx, mock.Anything, "image/png", int64(1024), uploadURLTTL).
			Return("https://bucket/presigned-put", nil)

		response, err := service.InitializeUpload(ctx, &models.UploadRequest{
			Name:        "diagram.png",
			ContentType: "image/png",
			Size:        1024,
		}, userID)

		require.NoError(t, err)
		assert.Equal(t, "https://bucket/presigned-put", response.UploadURL)
		assert.NotEqual(t, uuid.Nil, response.FileID)
		mockRepo.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Oversized file rejected", func(t *testing.T) {
		service := NewStorageService(new(MockRepository), new(MockBlobProvider), testConfig())

		_, err := service.InitializeUpload(ctx, &models.UploadRequest{
			Name:        "huge.png",
			ContentType: "image/png",
			Size:        11 * 1024 * 1024,
		}, userID)

		assert.ErrorIs(t, err, storageErrors.ErrFileTooLarge)
	})

	t.Run("Disallowed MIME type rejected", func(t *testing.T) {
		service := NewStorageService(new(MockRepository), new(MockBlobProvider), testConfig())

		_, err := service.InitializeUpload(ctx, &models.UploadRequest{
			Name:        "script.sh",
			ContentType: "application/x-sh",
			Size:        128,
		}, userID)

		assert.ErrorIs(t, err, storageErrors.ErrInvalidMimeType)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		service := NewStorageService(new(MockRepository), new(MockBlobProvider), testConfig())

		_, err := service.InitializeUpload(ctx, &models.UploadRequest{Name: "x.png"}, userID)
		assert.ErrorIs(t, err, storageErrors.ErrInvalidRequest)
	})
}

func TestStorageService_ConfirmUpload(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	fileID := uuid.Must(uuid.NewV4())

	pendingFile := func() *models.File {
		return &models.File{
			ID:          fileID,
			OwnerUserID: userID,
			Path:        "users/u/f.png",
			SizeBytes:   1024,
			Status:      models.StatusPending,
		}
	}

	t.Run("Confirms and records the durable URL", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProvider := new(MockBlobProvider)
		service := NewStorageService(mockRepo, mockProvider, testConfig())

		mockRepo.On("FindByID", ctx, fileID).Return(pendingFile(), nil)
		mockProvider.On("GetMetadata", ctx, "users/u/f.png").Return(int64(1024), nil)
		mockProvider.On("GeneratePresignedDownloadURL", ctx, "users/u/f.png", downloadURLTTL).
			Return("https://cdn/users/u/f.png", nil)
		mockRepo.On("MarkUploaded", ctx, fileID, "https://cdn/users/u/f.png").Return(nil)

		file, err := service.ConfirmUpload(ctx, fileID, userID)

		require.NoError(t, err)
		assert.Equal(t, models.StatusUploaded, file.Status)
		assert.Equal(t, "https://cdn/users/u/f.png", file.URL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Foreign file rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewStorageService(mockRepo, new(MockBlobProvider), testConfig())

		file := pendingFile()
		file.OwnerUserID = uuid.Must(uuid.NewV4())
		mockRepo.On("FindByID", ctx, fileID).Return(file, nil)

		_, err := service.ConfirmUpload(ctx, fileID, userID)
		assert.ErrorIs(t, err, storageErrors.ErrNotFileOwner)
	})

	t.Run("Already confirmed file rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewStorageService(mockRepo, new(MockBlobProvider), testConfig())

		file := pendingFile()
		file.Status = models.StatusUploaded
		mockRepo.On("FindByID", ctx, fileID).Return(file, nil)

		_, err := service.ConfirmUpload(ctx, fileID, userID)
		assert.ErrorIs(t, err, storageErrors.ErrFileNotPending)
	})

	t.Run("Missing object fails confirmation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProvider := new(MockBlobProvider)
		service := NewStorageService(mockRepo, mockProvider, testConfig())

		mockRepo.On("FindByID", ctx, fileID).Return(pendingFile(), nil)
		mockProvider.On("GetMetadata", ctx, "users/u/f.png").Return(int64(0), errors.New("not found"))

		_, err := service.ConfirmUpload(ctx, fileID, userID)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "MarkUploaded", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStorageService_DeleteFile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	fileID := uuid.Must(uuid.NewV4())

	t.Run("Blob delete failure still soft deletes the record", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProvider := new(MockBlobProvider)
		service := NewStorageService(mockRepo, mockProvider, testConfig())

		mockRepo.On("FindByID", ctx, fileID).Return(&models.File{
			ID: fileID, OwnerUserID: userID, Path: "users/u/f.png", Status: models.StatusUploaded,
		}, nil)
		mockProvider.On("Delete", ctx, "users/u/f.png").Return(errors.New("backend down"))
		mockRepo.On("Delete", ctx, fileID).Return(nil)

		assert.NoError(t, service.DeleteFile(ctx, fileID, userID))
		mockRepo.AssertExpectations(t)
	})
}

func TestStorageService_GetFileURL(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	fileID := uuid.Must(uuid.NewV4())

	t.Run("Pending file is not served", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewStorageService(mockRepo, new(MockBlobProvider), testConfig())

		mockRepo.On("FindByID", ctx, fileID).Return(&models.File{
			ID: fileID, OwnerUserID: userID, Status: models.StatusPending,
		}, nil)

		_, err := service.GetFileURL(ctx, fileID, userID)
		assert.ErrorIs(t, err, storageErrors.ErrFileNotReady)
	})
}
