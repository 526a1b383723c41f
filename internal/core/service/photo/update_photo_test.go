package photo_test

import (
	"context"
	"testing"
	"time"

	"family-timeline/internal/adapters/repository"
	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/service/photo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_UpdatePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("nominal - taken at only", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		id := uuid.New()
		takenAt := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
		patch := domain.PhotoPatch{TakenAt: &takenAt}
		updated := &domain.Photo{ID: id, TakenAt: takenAt}
		mockRepo.On("Update", ctx, id, patch).Return(updated, nil)

		// Act
		resp, err := service.UpdatePhoto(ctx, id, patch)

		// Assert
		require.NoError(t, err)
		require.Equal(t, updated, resp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit null description", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		id := uuid.New()
		patch := domain.PhotoPatch{SetDescription: true}
		mockRepo.On("Update", ctx, id, patch).Return(&domain.Photo{ID: id}, nil)

		// Act
		resp, err := service.UpdatePhoto(ctx, id, patch)

		// Assert
		require.NoError(t, err)
		require.Nil(t, resp.Description)
	})

	t.Run("nothing to update", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		// Act
		resp, err := service.UpdatePhoto(ctx, uuid.New(), domain.PhotoPatch{})

		// Assert
		require.ErrorIs(t, err, domain.ErrNothingToUpdate)
		require.Nil(t, resp)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		id := uuid.New()
		takenAt := time.Now()
		patch := domain.PhotoPatch{TakenAt: &takenAt}
		mockRepo.On("Update", ctx, id, patch).Return((*domain.Photo)(nil), domain.ErrPhotoNotFound)

		// Act
		_, err := service.UpdatePhoto(ctx, id, patch)

		// Assert
		require.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}
