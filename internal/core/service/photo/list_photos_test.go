package photo_test

import (
	"context"
	"errors"
	"testing"

	"family-timeline/internal/adapters/repository"
	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/service/photo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_ListPhotos(t *testing.T) {
	ctx := context.Background()

	t.Run("first page without cursor", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		photos := []domain.Photo{{ID: uuid.New()}, {ID: uuid.New()}}
		next := photos[1].ID
		mockRepo.On("List", ctx, 2, (*uuid.UUID)(nil)).Return(photos, &next, nil)

		// Act
		resp, nextCursor, err := service.ListPhotos(ctx, 2, nil)

		// Assert
		require.NoError(t, err)
		require.Equal(t, photos, resp)
		require.Equal(t, &next, nextCursor)
		mockRepo.AssertExpectations(t)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		cases := map[string]struct {
			requested int
			expected  int
		}{
			"zero":     {0, domain.DefaultPhotoPageSize},
			"negative": {-5, domain.DefaultPhotoPageSize},
			"too big":  {500, domain.MaxPhotoPageSize},
			"exact":    {100, 100},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				// Arrange
				mockRepo := repository.NewMockPhotoRepository()
				service := photo.NewPhotoService(mockRepo)
				mockRepo.On("List", ctx, tc.expected, (*uuid.UUID)(nil)).Return([]domain.Photo{}, (*uuid.UUID)(nil), nil)

				// Act
				_, nextCursor, err := service.ListPhotos(ctx, tc.requested, nil)

				// Assert
				require.NoError(t, err)
				require.Nil(t, nextCursor)
				mockRepo.AssertExpectations(t)
			})
		}
	})

	t.Run("page with cursor", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		cursor := uuid.New()
		photos := []domain.Photo{{ID: uuid.New()}}
		mockRepo.On("List", ctx, 20, &cursor).Return(photos, (*uuid.UUID)(nil), nil)

		// Act
		resp, nextCursor, err := service.ListPhotos(ctx, 20, &cursor)

		// Assert
		require.NoError(t, err)
		require.Nil(t, nextCursor)
		require.Len(t, resp, 1)
	})

	t.Run("deleted cursor ends the listing", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		cursor := uuid.New()
		mockRepo.On("List", ctx, 20, &cursor).Return([]domain.Photo{}, (*uuid.UUID)(nil), nil)

		// Act
		resp, nextCursor, err := service.ListPhotos(ctx, 20, &cursor)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, resp)
		require.Empty(t, resp)
		require.Nil(t, nextCursor)
	})

	t.Run("repository error", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockPhotoRepository()
		service := photo.NewPhotoService(mockRepo)

		repoErr := errors.New("database connection error")
		mockRepo.On("List", ctx, 20, (*uuid.UUID)(nil)).Return([]domain.Photo(nil), (*uuid.UUID)(nil), repoErr)

		// Act
		_, _, err := service.ListPhotos(ctx, 20, nil)

		// Assert
		require.Equal(t, repoErr, err)
	})
}
